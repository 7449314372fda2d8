package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tinta/internal/domain"
	"tinta/internal/services"
)

// PaletteAwareMsg is implemented by list actions that target the selected palette
type PaletteAwareMsg interface {
	WithPalette(p domain.SavedPalette) tea.Msg
}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowActionMenuMsg requests the searchable action menu
type ShowActionMenuMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// NewPaletteMsg requests the save form, optionally seeded by a launch context
type NewPaletteMsg struct {
	Launch *domain.LaunchContext
}

// GenerateMsg requests the AI generation prompt
type GenerateMsg struct{}

// EditPaletteMsg requests the save form in edit mode
type EditPaletteMsg struct {
	ID string
}

func (m EditPaletteMsg) WithPalette(p domain.SavedPalette) tea.Msg {
	return EditPaletteMsg{ID: p.ID}
}

// PreviewPaletteMsg requests the preview grid for a saved palette
type PreviewPaletteMsg struct {
	Palette domain.SavedPalette
}

func (m PreviewPaletteMsg) WithPalette(p domain.SavedPalette) tea.Msg {
	return PreviewPaletteMsg{Palette: p}
}

// DeletePaletteMsg requests the delete confirmation
type DeletePaletteMsg struct {
	Palette domain.SavedPalette
}

func (m DeletePaletteMsg) WithPalette(p domain.SavedPalette) tea.Msg {
	return DeletePaletteMsg{Palette: p}
}

// DuplicatePaletteMsg requests a copy of a palette
type DuplicatePaletteMsg struct {
	ID string
}

func (m DuplicatePaletteMsg) WithPalette(p domain.SavedPalette) tea.Msg {
	return DuplicatePaletteMsg{ID: p.ID}
}

// CopyPaletteMsg requests the copy format menu
type CopyPaletteMsg struct {
	Palette domain.SavedPalette
}

func (m CopyPaletteMsg) WithPalette(p domain.SavedPalette) tea.Msg {
	return CopyPaletteMsg{Palette: p}
}

// CopyLinkMsg requests copying the coolors.co link
type CopyLinkMsg struct {
	Colors []string
}

func (m CopyLinkMsg) WithPalette(p domain.SavedPalette) tea.Msg {
	return CopyLinkMsg{Colors: p.Colors}
}

// OpenCoolorsMsg requests opening the palette on coolors.co
type OpenCoolorsMsg struct {
	Colors []string
}

func (m OpenCoolorsMsg) WithPalette(p domain.SavedPalette) tea.Msg {
	return OpenCoolorsMsg{Colors: p.Colors}
}

// palettesLoadedMsg carries the result of a list reload
type palettesLoadedMsg struct {
	err      error
	palettes []domain.SavedPalette
}

// paletteSavedMsg is sent when a submission finishes
type paletteSavedMsg struct {
	err    error
	result *services.SubmitResult
}

// paletteDeletedMsg is sent when a delete finishes
type paletteDeletedMsg struct {
	err  error
	name string
}

// paletteDuplicatedMsg is sent when a duplicate finishes
type paletteDuplicatedMsg struct {
	err     error
	palette *domain.SavedPalette
}

// editFieldsLoadedMsg carries the form values of an edit target
type editFieldsLoadedMsg struct {
	err    error
	fields domain.PaletteFormFields
}

// noticeMsg is a transient success message
type noticeMsg struct {
	text string
}

// clearNoticeMsg hides the current notice
type clearNoticeMsg struct{}
