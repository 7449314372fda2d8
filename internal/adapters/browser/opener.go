package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"

	"tinta/internal/logging"
	"tinta/internal/ports"
)

// Opener implements ports.URLOpener
type Opener struct {
	browser string
}

// Verify interface compliance at compile time
var _ ports.URLOpener = (*Opener)(nil)

// NewOpener creates a URL opener. browser overrides the detected command
// when not empty.
func NewOpener(browser string) *Opener {
	return &Opener{browser: browser}
}

// Open opens rawURL in a browser
// Priority: browser flag → $TINTA_BROWSER → $BROWSER → platform default
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("refusing to open %q: only http(s) URLs are supported", rawURL)
	}

	name, args, err := findBrowser(o.browser, rawURL)
	if err != nil {
		return err
	}

	logging.Logger.Info("Opening browser", "browser", name, "url", rawURL)

	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser exited with error", "error", err, "browser", name)
		}
	}()

	return nil
}

func findBrowser(cliBrowser, rawURL string) (string, []string, error) {
	for _, candidate := range []string{cliBrowser, os.Getenv("TINTA_BROWSER"), os.Getenv("BROWSER")} {
		if candidate == "" {
			continue
		}
		words, err := shellwords.Parse(candidate)
		if err != nil {
			return "", nil, fmt.Errorf("invalid browser command %q: %w", candidate, err)
		}
		if len(words) == 0 {
			continue
		}
		return words[0], append(words[1:], rawURL), nil
	}

	name, args := platformBrowser(rawURL)
	return name, args, nil
}
