package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tinta/internal/theme"
)

// dimBackground strips styling from every background line, renders it
// dimmed and pads it to width. The result has at least height lines.
func dimBackground(background string, width, height int) []string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	for i := range bgLines {
		dimmed := theme.DimmedStyle.Render(ansi.Strip(bgLines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		bgLines[i] = dimmed
	}
	return bgLines
}

// compositeOverlay renders an overlay centered on top of a dimmed background.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := lipgloss.Width(overlay)
	startX := max((width-overlayWidth)/2, 0)
	startY := max((len(bgLines)-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		left := theme.DimmedStyle.Render(strings.Repeat(" ", startX))
		right := theme.DimmedStyle.Render(strings.Repeat(" ", max(width-startX-lipgloss.Width(line), 0)))
		bgLines[y] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}

// bottomAnchoredOverlay renders an overlay at the bottom of a dimmed
// background, spanning the full width.
func bottomAnchoredOverlay(background, overlay string, width, height, overlayHeight int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(height-overlayHeight, 0)
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}

	return strings.Join(bgLines, "\n")
}
