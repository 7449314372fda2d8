package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tinta/internal/theme"
)

// Tip is a hint shown under the palette list. Keys fill the %s
// placeholders of Format.
type Tip struct {
	Format string
	Keys   []string
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var b strings.Builder
	b.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		b.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			b.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return b.String()
}

// KeyWithTip wraps a key.Binding with an optional tip built from the
// effective keys.
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}

// listTips collects the tips of bindings usable from the palette list
func listTips(bindings ...KeyWithTip) []Tip {
	var tips []Tip
	for _, b := range bindings {
		if b.Tip != nil {
			tips = append(tips, *b.Tip)
		}
	}
	return tips
}
