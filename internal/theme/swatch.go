package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Foreground colors used on top of swatches
const (
	swatchDarkText  = "#111111"
	swatchLightText = "#F5F5F5"
)

// ContrastText returns a readable text color for the given background hex.
// Invalid colors fall back to the light text color.
func ContrastText(hex string) string {
	c, err := colorful.Hex(expandShortHex(hex))
	if err != nil {
		return swatchLightText
	}
	_, _, l := c.Hcl()
	if l > 0.6 {
		return swatchDarkText
	}
	return swatchLightText
}

// Swatch renders a block filled with hex and labeled with text
func Swatch(hex, text string, width int) string {
	bg := expandShortHex(hex)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(ContrastText(bg))).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// Strip renders colors as a row of narrow blocks
func Strip(colors []string, cellWidth int) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(expandShortHex(c))).
			Render(strings.Repeat(" ", cellWidth)))
	}
	return b.String()
}

// expandShortHex turns #abc into #aabbcc
func expandShortHex(hex string) string {
	if len(hex) != 4 || hex[0] != '#' {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}
