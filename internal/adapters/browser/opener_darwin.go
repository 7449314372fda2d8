//go:build darwin

package browser

func platformBrowser(rawURL string) (string, []string) {
	return "open", []string{rawURL}
}
