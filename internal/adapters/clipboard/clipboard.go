package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"tinta/internal/logging"
	"tinta/internal/ports"
)

// SystemClipboard implements ports.Clipboard with the OS clipboard
type SystemClipboard struct{}

// Verify interface compliance at compile time
var _ ports.Clipboard = (*SystemClipboard)(nil)

// NewSystemClipboard creates a clipboard adapter
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Copy replaces the clipboard contents with text
func (c *SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logging.Logger.Debug("Copied to clipboard", "bytes", len(text))
	return nil
}
