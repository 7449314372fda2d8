package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tinta/internal/config"
	"tinta/internal/domain"
	"tinta/internal/form"
	"tinta/internal/logging"
	"tinta/internal/ports"
	"tinta/internal/services"
	"tinta/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateActionMenu
	stateConfirmingDelete
	stateCopying
	stateEditingPalette
	stateGenerating
	stateHelp
	statePreviewing
)

const noticeDuration = 3 * time.Second

// ModelOptions holds the settings-derived UI configuration
type ModelOptions struct {
	DefaultCreativity  domain.Creativity
	DefaultMode        domain.Mode
	DefaultTotalColors int
	DevMode            bool
	ErrorClearDelay    time.Duration
	FocusDelay         time.Duration
	KeysConfig         config.KeyBindingsConfig
	// QuitAfterForm exits when the form opened at start closes
	QuitAfterForm bool
}

// Model is the root bubbletea model
type Model struct {
	actionMenu    *ActionMenu
	copyForm      *Dialog
	deleteConfirm *Dialog
	drafts        ports.DraftStore
	errorManager  *ErrorManager
	export        *services.ExportService
	generateView  *Dialog
	generation    *services.GenerationService
	height        int
	helpScreen    *Dialog
	keys          KeyMap
	notice        string
	opts          ModelOptions
	paletteForm   *Dialog
	paletteList   *PaletteList
	palettes      *services.PaletteService
	pendingCmd    tea.Cmd
	preview       *Dialog
	selectID      string
	state         uiState
	width         int
}

// NewModel creates the root model showing the palette list
func NewModel(
	palettes *services.PaletteService,
	generation *services.GenerationService,
	export *services.ExportService,
	drafts ports.DraftStore,
	opts ModelOptions,
) *Model {
	if opts.DefaultTotalColors <= 0 {
		opts.DefaultTotalColors = domain.DefaultColorFields
	}
	if opts.DefaultCreativity == "" {
		opts.DefaultCreativity = domain.DefaultCreativity
	}

	m := &Model{
		drafts:       drafts,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		export:       export,
		generation:   generation,
		keys:         NewKeyMap(opts.KeysConfig),
		opts:         opts,
		palettes:     palettes,
		state:        stateList,
	}
	m.paletteList = NewPaletteList(&m.keys, opts.DevMode)
	return m
}

// StartWithForm opens the save form immediately. launch seeds a new palette;
// editID opens an existing one instead.
func (m *Model) StartWithForm(launch *domain.LaunchContext, editID string) {
	if editID != "" {
		m.pendingCmd = m.loadEditCmd(editID)
		return
	}
	m.pendingCmd = m.openNewForm(launch)
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadPalettesCmd(), m.pendingCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages that apply in every state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.paletteList.SetSize(msg.Width, m.listHeight())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{} })

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case palettesLoadedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to load palettes", "error", msg.err)
			return m, m.errorManager.Notify(fmt.Errorf("failed to load palettes: %w", msg.err))
		}
		cmd := m.paletteList.SetPalettes(msg.palettes)
		if m.selectID != "" {
			m.paletteList.SelectID(m.selectID)
			m.selectID = ""
		}
		return m, cmd

	case editFieldsLoadedMsg:
		if msg.err != nil {
			return m, tea.Batch(m.errorManager.Notify(msg.err), m.quitIfFormOnly())
		}
		return m, m.openForm("Edit Palette", msg.fields)
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateActionMenu:
		return m.updateActionMenu(msg)
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	case stateCopying:
		return m.updateCopying(msg)
	case stateEditingPalette:
		return m.updateEditingPalette(msg)
	case stateGenerating:
		return m.updateGenerating(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case statePreviewing:
		return m.updatePreviewing(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, m.quit()

	case ShowActionMenuMsg:
		var selected *domain.SavedPalette
		if p, ok := m.paletteList.Selected(); ok {
			selected = &p
		}
		m.actionMenu = NewActionMenu(selected, &m.keys)
		m.actionMenu.width = m.width
		m.state = stateActionMenu
		return m, m.actionMenu.Init()

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.opts.DevMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updated.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case NewPaletteMsg:
		return m, m.openNewForm(msg.Launch)

	case EditPaletteMsg:
		return m, m.loadEditCmd(msg.ID)

	case GenerateMsg:
		content := NewGenerateView(m.generation, &m.keys, m.opts.DefaultCreativity, m.opts.DefaultTotalColors)
		m.generateView = NewDialog("Generate Palette", content, m.opts.DevMode)
		m.state = stateGenerating
		initCmd := m.generateView.Init()
		m.generateView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, initCmd

	case PreviewPaletteMsg:
		grid := NewPreviewGrid(m.export, &m.keys, msg.Palette.Colors, msg.Palette.Description)
		grid.width = m.width
		m.preview = NewDialog(msg.Palette.Name, grid, m.opts.DevMode)
		m.state = statePreviewing
		return m, m.preview.Init()

	case DeletePaletteMsg:
		m.deleteConfirm = NewDialog("Delete Palette", NewDeleteConfirm(msg.Palette), m.opts.DevMode)
		m.state = stateConfirmingDelete
		return m, m.deleteConfirm.Init()

	case DuplicatePaletteMsg:
		return m, m.duplicateCmd(msg.ID)

	case CopyPaletteMsg:
		m.copyForm = NewDialog("Copy "+msg.Palette.Name, NewCopyForm(m.export, msg.Palette.Colors), m.opts.DevMode)
		m.state = stateCopying
		return m, m.copyForm.Init()

	case CopyLinkMsg:
		link, err := m.export.CopyCoolorsLink(msg.Colors)
		if err != nil {
			return m, m.errorManager.Notify(err)
		}
		return m, emit(noticeMsg{text: "Copied " + link})

	case OpenCoolorsMsg:
		if _, err := m.export.OpenCoolors(msg.Colors); err != nil {
			return m, m.errorManager.Notify(err)
		}
		return m, nil

	case paletteDeletedMsg:
		if msg.err != nil {
			return m, m.errorManager.Notify(fmt.Errorf("failed to delete palette: %w", msg.err))
		}
		return m, tea.Batch(m.loadPalettesCmd(), emit(noticeMsg{text: fmt.Sprintf("Deleted %q", msg.name)}))

	case paletteDuplicatedMsg:
		if msg.err != nil {
			return m, m.errorManager.Notify(fmt.Errorf("failed to duplicate palette: %w", msg.err))
		}
		m.selectID = msg.palette.ID
		return m, tea.Batch(m.loadPalettesCmd(), emit(noticeMsg{text: fmt.Sprintf("Created %q", msg.palette.Name)}))
	}

	updated, cmd := m.paletteList.Update(msg)
	m.paletteList = updated.(*PaletteList)
	return m, cmd
}

func (m *Model) updateActionMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.actionMenu.Update(msg)
	m.actionMenu = updated.(*ActionMenu)

	if m.actionMenu.Completed {
		m.state = stateList
		if action := m.actionMenu.Dispatch(); action != nil {
			return m, emit(action)
		}
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateList
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) updatePreviewing(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.preview.Update(msg)
	m.preview = updated.(*Dialog)

	if content, ok := m.preview.Content().(*PreviewGrid); ok && content.Completed {
		m.state = stateList
		m.preview = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateCopying(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.copyForm.Update(msg)
	m.copyForm = updated.(*Dialog)

	if content, ok := m.copyForm.Content().(*CopyForm); ok && content.Completed {
		result := content.Result()
		m.state = stateList
		m.copyForm = nil

		if result.Error != nil {
			return m, m.errorManager.Notify(result.Error)
		}
		if result.Notice != "" {
			return m, emit(noticeMsg{text: result.Notice})
		}
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.deleteConfirm.Update(msg)
	m.deleteConfirm = updated.(*Dialog)

	if content, ok := m.deleteConfirm.Content().(*DeleteConfirm); ok && content.Completed {
		result := content.Result()
		m.state = stateList
		m.deleteConfirm = nil

		if !result.Confirmed {
			return m, nil
		}
		return m, m.deleteCmd(result.Palette)
	}
	return m, cmd
}

func (m *Model) updateGenerating(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.generateView.Update(msg)
	m.generateView = updated.(*Dialog)

	if content, ok := m.generateView.Content().(*GenerateView); ok && content.Completed {
		result := content.Result()
		m.state = stateList
		m.generateView = nil

		if result.Launch != nil {
			return m, m.openNewForm(result.Launch)
		}
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateEditingPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.paletteForm.Update(msg)
	m.paletteForm = updated.(*Dialog)

	if content, ok := m.paletteForm.Content().(*PaletteForm); ok && content.Completed {
		result := content.Result()
		m.state = stateList
		m.paletteForm = nil

		if m.opts.QuitAfterForm {
			return m, tea.Quit
		}
		if result.Cancelled {
			return m, nil
		}

		verb := "Updated"
		if result.Created {
			verb = "Saved"
		}
		m.selectID = result.Palette.ID
		return m, tea.Batch(m.loadPalettesCmd(), emit(noticeMsg{text: fmt.Sprintf("%s %q", verb, result.Palette.Name)}))
	}
	return m, cmd
}

// openNewForm opens the save form for a new palette. A saved draft is only
// restored when the form is not seeded by generated colors.
func (m *Model) openNewForm(launch *domain.LaunchContext) tea.Cmd {
	var draft *domain.PaletteFormFields
	if launch == nil && m.drafts != nil {
		loaded, err := m.drafts.Load()
		if err != nil {
			logging.Logger.Warn("Failed to load draft", "error", err)
		}
		draft = loaded
	}

	values := form.InitialValues(draft, launch)
	if draft == nil && m.opts.DefaultMode.Valid() {
		values.Mode = m.opts.DefaultMode
	}

	title := "New Palette"
	if draft != nil {
		title = "New Palette (restored draft)"
	}
	return m.openForm(title, values)
}

func (m *Model) openForm(title string, values domain.PaletteFormFields) tea.Cmd {
	content := NewPaletteForm(m.palettes, m.export, m.drafts, &m.keys, values, m.opts.FocusDelay)
	content.width = m.width
	m.paletteForm = NewDialog(title, content, m.opts.DevMode)
	m.state = stateEditingPalette
	return m.paletteForm.Init()
}

func (m *Model) quit() tea.Cmd {
	if content, ok := m.activeForm(); ok && !content.Completed {
		content.cancel()
	}
	return tea.Quit
}

func (m *Model) quitIfFormOnly() tea.Cmd {
	if m.opts.QuitAfterForm {
		return tea.Quit
	}
	return nil
}

func (m *Model) activeForm() (*PaletteForm, bool) {
	if m.state != stateEditingPalette || m.paletteForm == nil {
		return nil, false
	}
	content, ok := m.paletteForm.Content().(*PaletteForm)
	return content, ok
}

func (m *Model) loadPalettesCmd() tea.Cmd {
	palettes := m.palettes
	return func() tea.Msg {
		list, err := palettes.List(context.Background(), "")
		return palettesLoadedMsg{err: err, palettes: list}
	}
}

func (m *Model) loadEditCmd(id string) tea.Cmd {
	palettes := m.palettes
	return func() tea.Msg {
		fields, err := palettes.CreateEdit(context.Background(), id)
		return editFieldsLoadedMsg{err: err, fields: fields}
	}
}

func (m *Model) deleteCmd(p domain.SavedPalette) tea.Cmd {
	palettes := m.palettes
	return func() tea.Msg {
		err := palettes.Delete(context.Background(), p.ID)
		return paletteDeletedMsg{err: err, name: p.Name}
	}
}

func (m *Model) duplicateCmd(id string) tea.Cmd {
	palettes := m.palettes
	return func() tea.Msg {
		p, err := palettes.Duplicate(context.Background(), id)
		return paletteDuplicatedMsg{err: err, palette: p}
	}
}

// listHeight is the space left for the list under the header and above the
// footer and notifications
func (m *Model) listHeight() int {
	return max(m.height-12, 4)
}

func (m *Model) View() string {
	var view string
	switch m.state {
	case stateList:
		view = m.paletteList.View()
	case stateActionMenu:
		view = bottomAnchoredOverlay(m.paletteList.View(), m.actionMenu.View(), m.width, m.height, m.actionMenu.Height())
	case stateConfirmingDelete:
		view = compositeOverlay(m.paletteList.View(), m.deleteConfirm.View(), m.width, m.height)
	case stateCopying:
		view = m.copyForm.View()
	case stateEditingPalette:
		view = m.paletteForm.View()
	case stateGenerating:
		view = m.generateView.View()
	case stateHelp:
		view = m.helpScreen.View()
	case statePreviewing:
		view = m.preview.View()
	}

	if m.notice != "" {
		view += "\n" + theme.SuccessStyle.Render(m.notice)
	}
	if m.errorManager.HasError() {
		view += "\n" + theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	}
	return view
}
