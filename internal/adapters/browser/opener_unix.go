//go:build !darwin && !windows

package browser

func platformBrowser(rawURL string) (string, []string) {
	return "xdg-open", []string{rawURL}
}
