package services

import (
	"fmt"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/ports"
)

// ExportService copies palette colors and opens them on coolors.co
type ExportService struct {
	clipboard ports.Clipboard
	opener    ports.URLOpener
}

// NewExportService creates a new ExportService
func NewExportService(clipboard ports.Clipboard, opener ports.URLOpener) *ExportService {
	return &ExportService{
		clipboard: clipboard,
		opener:    opener,
	}
}

// Copy renders colors in format and writes them to the clipboard. The
// rendered text is returned.
func (s *ExportService) Copy(colors []string, format domain.CopyFormat) (string, error) {
	text, err := domain.ExportColors(colors, format)
	if err != nil {
		return "", err
	}

	if err := s.clipboard.Copy(text); err != nil {
		logging.Logger.Error("Failed to copy colors", "format", format, "error", err)
		return "", fmt.Errorf("failed to copy colors: %w", err)
	}

	logging.Logger.Info("Colors copied", "format", format, "count", len(colors))
	return text, nil
}

// CopyCoolorsLink writes the coolors.co link of colors to the clipboard
func (s *ExportService) CopyCoolorsLink(colors []string) (string, error) {
	link := domain.CoolorsURL(colors)
	if err := s.clipboard.Copy(link); err != nil {
		return "", fmt.Errorf("failed to copy link: %w", err)
	}
	return link, nil
}

// OpenCoolors opens the coolors.co page of colors in the browser
func (s *ExportService) OpenCoolors(colors []string) (string, error) {
	link := domain.CoolorsURL(colors)

	logging.Logger.Info("Opening coolors.co", "url", link)
	if err := s.opener.Open(link); err != nil {
		return "", fmt.Errorf("failed to open browser: %w", err)
	}
	return link, nil
}
