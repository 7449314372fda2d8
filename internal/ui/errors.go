package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
	minErrorWidth  = 10
)

// formatErrorForDisplay formats an error message for TUI display. The text
// is word-wrapped to maxWidth (the "Error: " prefix counts on the first line)
// and cut to maxErrorLines, ending in "..." when something was dropped.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth)
	wrapped := wordwrap.String(errorPrefix+message, width)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxErrorLines {
		return wrapped
	}

	lines = lines[:maxErrorLines]
	last := lines[maxErrorLines-1]
	if utf8.RuneCountInString(last)+len(truncationMark) > width {
		last = truncate.String(last, uint(width-len(truncationMark)))
	}
	lines[maxErrorLines-1] = last + truncationMark
	return strings.Join(lines, "\n")
}
