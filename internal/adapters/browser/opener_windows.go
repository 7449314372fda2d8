//go:build windows

package browser

func platformBrowser(rawURL string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
}
