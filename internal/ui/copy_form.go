package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/services"
)

// CopyFormResult contains the result of the copy menu
type CopyFormResult struct {
	Cancelled bool
	Error     error
	Format    domain.CopyFormat
	Notice    string
}

// CopyForm lets the user pick an export format and copies the colors
type CopyForm struct {
	Completed bool
	colors    []string
	export    *services.ExportService
	form      *huh.Form
	result    CopyFormResult
}

// NewCopyForm creates a copy menu for colors
func NewCopyForm(export *services.ExportService, colors []string) *CopyForm {
	cf := &CopyForm{
		colors: colors,
		export: export,
		result: CopyFormResult{Format: domain.FormatJSON},
	}

	options := make([]huh.Option[domain.CopyFormat], len(domain.CopyFormats))
	for i, info := range domain.CopyFormats {
		options[i] = huh.NewOption(info.Title, info.Format)
	}

	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.CopyFormat]().
				Title("Copy format").
				Description(fmt.Sprintf("%d colors", len(domain.FilterValidColors(colors)))).
				Options(options...).
				Value(&cf.result.Format),
		),
	)

	return cf
}

func (cf *CopyForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *CopyForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.result.Cancelled = true
			cf.Completed = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
		if _, err := cf.export.Copy(cf.colors, cf.result.Format); err != nil {
			logging.Logger.Error("Failed to copy colors", "format", cf.result.Format, "error", err)
			cf.result.Error = err
			return cf, nil
		}
		cf.result.Notice = fmt.Sprintf("Copied colors as %s", cf.result.Format)
		return cf, nil
	}

	return cf, cmd
}

func (cf *CopyForm) View() string {
	if cf.form != nil {
		return cf.form.View()
	}
	return ""
}

// Result returns the form result
func (cf *CopyForm) Result() CopyFormResult {
	return cf.result
}
