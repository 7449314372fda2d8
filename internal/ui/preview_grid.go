package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tinta/internal/domain"
	"tinta/internal/services"
	"tinta/internal/theme"
)

const (
	swatchWidth = 14
	swatchGap   = 1
)

// PreviewGrid shows the valid colors of a palette as swatches and offers
// the export actions
type PreviewGrid struct {
	Completed   bool
	colors      []string
	copyForm    *CopyForm
	description string
	errorText   string
	export      *services.ExportService
	keys        *KeyMap
	notice      string
	width       int
}

// NewPreviewGrid creates a preview of colors. Invalid and empty values are
// filtered out.
func NewPreviewGrid(export *services.ExportService, keys *KeyMap, colors []string, description string) *PreviewGrid {
	return &PreviewGrid{
		colors:      domain.FilterValidColors(colors),
		description: description,
		export:      export,
		keys:        keys,
		width:       80,
	}
}

// Colors returns the previewed colors
func (p *PreviewGrid) Colors() []string {
	return p.colors
}

func (p *PreviewGrid) Init() tea.Cmd {
	return nil
}

func (p *PreviewGrid) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		p.width = sizeMsg.Width
	}

	if p.copyForm != nil {
		updated, cmd := p.copyForm.Update(msg)
		p.copyForm = updated.(*CopyForm)
		if p.copyForm.Completed {
			result := p.copyForm.Result()
			p.copyForm = nil
			p.setOutcome(result.Notice, result.Error)
		}
		return p, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case keyMsg.String() == "esc", key.Matches(keyMsg, p.keys.Application.Quit.Binding):
		p.Completed = true
		return p, nil

	case len(p.colors) == 0:
		return p, nil

	case key.Matches(keyMsg, p.keys.Palette.Copy.Binding):
		p.copyForm = NewCopyForm(p.export, p.colors)
		return p, p.copyForm.Init()

	case key.Matches(keyMsg, p.keys.Palette.CopyLink.Binding):
		link, err := p.export.CopyCoolorsLink(p.colors)
		p.setOutcome("Copied "+link, err)

	case key.Matches(keyMsg, p.keys.Palette.OpenCoolors.Binding):
		link, err := p.export.OpenCoolors(p.colors)
		p.setOutcome("Opened "+link, err)
	}

	return p, nil
}

func (p *PreviewGrid) setOutcome(notice string, err error) {
	p.notice, p.errorText = "", ""
	if err != nil {
		p.errorText = formatErrorForDisplay(err, p.width)
		return
	}
	p.notice = notice
}

func (p *PreviewGrid) View() string {
	if len(p.colors) == 0 {
		return "\n" + theme.HelpLabelStyle.Render("No valid colors to preview. Add hex colors like #FF5733.") +
			"\n" + theme.HelpStyle.Render("esc: back")
	}

	var b strings.Builder
	if p.description != "" {
		b.WriteString(theme.PaletteDescStyle.Render(wordwrap.String(p.description, max(20, p.width-2))))
		b.WriteString("\n\n")
	}

	b.WriteString(renderSwatchGrid(p.colors, p.width, nil))

	if p.copyForm != nil {
		b.WriteString("\n\n" + p.copyForm.View())
		return b.String()
	}

	if p.notice != "" {
		b.WriteString("\n" + theme.SuccessStyle.Render(p.notice))
	}
	if p.errorText != "" {
		b.WriteString("\n" + theme.ErrorStyle.Render(p.errorText))
	}

	b.WriteString("\n" + theme.HelpStyle.Render(fmt.Sprintf("%s: copy • %s: copy link • %s: open in browser • esc: back",
		p.keys.Palette.Copy.Binding.Help().Key,
		p.keys.Palette.CopyLink.Binding.Help().Key,
		p.keys.Palette.OpenCoolors.Binding.Help().Key)))
	return b.String()
}

// renderSwatchGrid lays colors out in rows that fit width. decorate, when
// set, returns the label shown inside swatch i.
func renderSwatchGrid(colors []string, width int, decorate func(i int, color string) string) string {
	perRow := max(1, (width+swatchGap)/(swatchWidth+swatchGap))

	var rows []string
	for start := 0; start < len(colors); start += perRow {
		end := min(start+perRow, len(colors))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			label := colors[i]
			if decorate != nil {
				label = decorate(i, colors[i])
			}
			cell := lipgloss.JoinVertical(lipgloss.Left,
				theme.Swatch(colors[i], "", swatchWidth),
				theme.Swatch(colors[i], label, swatchWidth),
				theme.Swatch(colors[i], "", swatchWidth),
			)
			cells = append(cells, lipgloss.NewStyle().MarginRight(swatchGap).Render(cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
