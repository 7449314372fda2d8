package ports

// URLOpener opens a URL in the user's browser
type URLOpener interface {
	Open(url string) error
}
