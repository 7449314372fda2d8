package clipboard

import (
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"

	"tinta/internal/logging"
	"tinta/internal/ports"
)

// OSC52Clipboard implements ports.Clipboard by writing an OSC 52 escape
// sequence to a terminal. The terminal on the other end sets its own
// clipboard, which makes copying work over SSH.
type OSC52Clipboard struct {
	out io.Writer
}

// Verify interface compliance at compile time
var _ ports.Clipboard = (*OSC52Clipboard)(nil)

// NewOSC52Clipboard creates a clipboard that writes to out
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{out: out}
}

// Copy sends text to the terminal clipboard
func (c *OSC52Clipboard) Copy(text string) error {
	if _, err := osc52.New(text).WriteTo(c.out); err != nil {
		return fmt.Errorf("failed to copy to terminal clipboard: %w", err)
	}
	logging.Logger.Debug("Copied to terminal clipboard", "bytes", len(text))
	return nil
}
