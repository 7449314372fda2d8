package ports

// Clipboard writes text to the system clipboard
type Clipboard interface {
	Copy(text string) error
}
