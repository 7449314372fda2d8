package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tinta/internal/domain"
	"tinta/internal/form"
	"tinta/internal/logging"
	"tinta/internal/ports"
	"tinta/internal/services"
	"tinta/internal/theme"
)

const labelWidth = 14

// PaletteFormResult contains the result of the save form
type PaletteFormResult struct {
	Cancelled bool
	Created   bool
	Palette   *domain.SavedPalette
}

// PaletteForm is the create/edit palette form. Field values, the number of
// color fields and focus live in form.Form; the text inputs only mirror
// them.
type PaletteForm struct {
	Completed  bool
	drafts     ports.DraftStore
	editing    bool
	export     *services.ExportService
	form       *form.Form
	inputs     map[form.FieldID]textinput.Model
	keys       *KeyMap
	notice     string
	palettes   *services.PaletteService
	preview    *PreviewGrid
	result     PaletteFormResult
	saving     bool
	scheduler  *teaScheduler
	spinner    spinner.Model
	statusText string
	width      int
}

// NewPaletteForm creates the save form seeded with initial. drafts may be
// nil; it is never used while editing.
func NewPaletteForm(
	palettes *services.PaletteService,
	export *services.ExportService,
	drafts ports.DraftStore,
	keys *KeyMap,
	initial domain.PaletteFormFields,
	focusDelay time.Duration,
) *PaletteForm {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	scheduler := newTeaScheduler()
	pf := &PaletteForm{
		drafts:    drafts,
		editing:   initial.IsEditing(),
		export:    export,
		form:      form.New(initial, form.Options{FocusDelay: focusDelay, Scheduler: scheduler}),
		inputs:    make(map[form.FieldID]textinput.Model),
		keys:      keys,
		palettes:  palettes,
		scheduler: scheduler,
		spinner:   s,
		width:     80,
	}

	for _, id := range []form.FieldID{form.FieldName, form.FieldDescription, form.FieldKeywords} {
		pf.inputs[id] = newFieldInput(id)
	}
	for n := 1; n <= domain.MaxColorFields; n++ {
		id := form.ColorFieldID(n)
		pf.inputs[id] = newFieldInput(id)
	}
	pf.loadInputs()
	pf.form.FocusHandlers(form.FieldName).OnFocus()

	logging.Logger.Debug("Palette form opened",
		"editing", pf.editing,
		"colors", pf.form.Count())
	return pf
}

func newFieldInput(id form.FieldID) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = 40
	switch {
	case id == form.FieldName:
		ti.CharLimit = domain.NameMaxLength
		ti.Placeholder = "Sunset Boulevard"
	case id == form.FieldDescription:
		ti.CharLimit = domain.DescriptionMaxLength
		ti.Placeholder = "Optional"
		ti.Width = 60
	case id == form.FieldKeywords:
		ti.Placeholder = "warm, retro (enter to add)"
	case id.IsColorField():
		ti.CharLimit = 7
		ti.Placeholder = "#FF5733"
		ti.Width = 8
	}
	return ti
}

// Form exposes the underlying form state
func (pf *PaletteForm) Form() *form.Form {
	return pf.form
}

// Result returns the form result
func (pf *PaletteForm) Result() PaletteFormResult {
	return pf.result
}

func (pf *PaletteForm) Init() tea.Cmd {
	return pf.syncFocus()
}

func (pf *PaletteForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pf.width = msg.Width

	case scheduledCallbackMsg:
		if pf.scheduler.Fire(msg) {
			return pf, pf.syncFocus()
		}
		return pf, nil

	case paletteSavedMsg:
		return pf, pf.handleSaved(msg)

	case spinner.TickMsg:
		if pf.saving {
			var cmd tea.Cmd
			pf.spinner, cmd = pf.spinner.Update(msg)
			return pf, cmd
		}
		return pf, nil
	}

	if pf.preview != nil {
		updated, cmd := pf.preview.Update(msg)
		pf.preview = updated.(*PreviewGrid)
		if pf.preview.Completed {
			pf.preview = nil
			return pf, pf.syncFocus()
		}
		return pf, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return pf, pf.updateFocusedInput(msg)
	}

	// Submission is not reentrant
	if pf.saving {
		return pf, nil
	}

	return pf, pf.handleKey(keyMsg)
}

func (pf *PaletteForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	pf.notice = ""

	switch {
	case msg.String() == "esc":
		pf.cancel()
		return nil

	case key.Matches(msg, pf.keys.Form.Submit.Binding):
		return pf.submit()

	case key.Matches(msg, pf.keys.Form.AddColor.Binding):
		if id := pf.form.AddColor(); id == form.FieldNone {
			pf.notice = fmt.Sprintf("A palette holds at most %d colors", domain.MaxColorFields)
		}
		return pf.afterStructuralChange()

	case key.Matches(msg, pf.keys.Form.RemoveColor.Binding):
		pf.reportRemove(pf.form.RemoveColor())
		return pf.afterStructuralChange()

	case key.Matches(msg, pf.keys.Form.RemoveLastColor.Binding):
		pf.reportRemove(pf.form.RemoveLastColor())
		return pf.afterStructuralChange()

	case key.Matches(msg, pf.keys.Form.Clear.Binding):
		pf.form.Clear()
		pf.statusText = ""
		pf.notice = "Form cleared"
		return pf.afterStructuralChange()

	case key.Matches(msg, pf.keys.Form.Preview.Binding):
		pf.commitKeywords()
		snapshot := pf.form.Snapshot()
		pf.preview = NewPreviewGrid(pf.export, pf.keys, pf.form.Preview(), snapshot.Description)
		pf.preview.width = pf.width
		return nil

	case key.Matches(msg, pf.keys.Form.CycleMode.Binding):
		pf.toggleMode()
		return nil

	case key.Matches(msg, pf.keys.Form.NextField.Binding):
		return pf.moveFocus(1)

	case key.Matches(msg, pf.keys.Form.PrevField.Binding):
		return pf.moveFocus(-1)
	}

	current := pf.form.FocusState().Current
	switch current {
	case form.FieldMode:
		switch msg.String() {
		case " ", "left", "right", "h", "l", "enter":
			pf.toggleMode()
		}
		return nil

	case form.FieldKeywords:
		switch msg.String() {
		case "enter":
			pf.commitKeywords()
			return nil
		case "backspace":
			if pf.inputs[form.FieldKeywords].Value() == "" {
				pf.dropLastKeyword()
				return nil
			}
		}
	}

	if msg.String() == "enter" {
		return pf.moveFocus(1)
	}

	return pf.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused input and writes the new
// value into the form
func (pf *PaletteForm) updateFocusedInput(msg tea.Msg) tea.Cmd {
	current := pf.form.FocusState().Current
	input, ok := pf.inputs[current]
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	input, cmd = input.Update(msg)
	pf.inputs[current] = input

	if current != form.FieldKeywords {
		pf.form.SetValue(current, input.Value())
	}
	return cmd
}

// order returns the visible fields in tab order
func (pf *PaletteForm) order() []form.FieldID {
	fields := []form.FieldID{form.FieldName, form.FieldDescription, form.FieldMode, form.FieldKeywords}
	for n := 1; n <= pf.form.Count(); n++ {
		fields = append(fields, form.ColorFieldID(n))
	}
	return fields
}

func (pf *PaletteForm) moveFocus(delta int) tea.Cmd {
	state := pf.form.FocusState()
	if state.Current == form.FieldKeywords {
		pf.commitKeywords()
	}

	order := pf.order()
	idx := -1
	from := state.Current
	if from == form.FieldNone {
		from = state.LastColor
	}
	for i, id := range order {
		if id == from {
			idx = i
			break
		}
	}

	var next form.FieldID
	switch {
	case idx < 0 && delta < 0:
		next = order[len(order)-1]
	case idx < 0:
		next = order[0]
	default:
		next = order[(idx+delta+len(order))%len(order)]
	}

	if state.Current != form.FieldNone {
		pf.form.FocusHandlers(state.Current).OnBlur()
	}
	pf.form.FocusHandlers(next).OnFocus()
	return pf.syncFocus()
}

// syncFocus mirrors the form's focus onto the text inputs
func (pf *PaletteForm) syncFocus() tea.Cmd {
	current := pf.form.FocusState().Current

	var cmds []tea.Cmd
	for id, input := range pf.inputs {
		if id == current {
			if !input.Focused() {
				cmds = append(cmds, input.Focus())
				input.CursorEnd()
			}
		} else if input.Focused() {
			input.Blur()
		}
		pf.inputs[id] = input
	}
	return tea.Batch(cmds...)
}

// loadInputs copies the form values into the inputs
func (pf *PaletteForm) loadInputs() {
	for id, input := range pf.inputs {
		if id == form.FieldKeywords {
			continue
		}
		input.SetValue(pf.form.Value(id))
		pf.inputs[id] = input
	}
}

// afterStructuralChange refreshes the inputs after an add, remove or clear
// and starts any deferred focus ticks
func (pf *PaletteForm) afterStructuralChange() tea.Cmd {
	pf.loadInputs()
	if pf.form.FocusState().Current == form.FieldNone {
		kw := pf.inputs[form.FieldKeywords]
		kw.SetValue("")
		pf.inputs[form.FieldKeywords] = kw
	}
	return tea.Batch(pf.syncFocus(), pf.scheduler.Cmds())
}

func (pf *PaletteForm) reportRemove(r form.RemoveResult) {
	if !r.Removed {
		pf.notice = "Nothing removed: " + r.Reason
	}
}

func (pf *PaletteForm) toggleMode() {
	mode := domain.ModeDark
	if domain.Mode(pf.form.Value(form.FieldMode)) == domain.ModeDark {
		mode = domain.ModeLight
	}
	pf.form.SetValue(form.FieldMode, string(mode))
}

// commitKeywords adds the typed keyword text to the list and reports what
// was dropped
func (pf *PaletteForm) commitKeywords() {
	input := pf.inputs[form.FieldKeywords]
	text := input.Value()
	if strings.TrimSpace(text) == "" {
		return
	}

	result := pf.form.UpdateKeywords(text)
	input.SetValue("")
	pf.inputs[form.FieldKeywords] = input
	pf.notice = keywordFeedback(result)
}

func (pf *PaletteForm) dropLastKeyword() {
	keywords := pf.form.Keywords()
	if len(keywords) == 0 {
		return
	}
	pf.form.SetKeywords(keywords[:len(keywords)-1])
}

// keywordFeedback summarizes a keyword batch for the user
func keywordFeedback(r form.KeywordResult) string {
	var parts []string
	if n := len(r.Valid); n > 0 {
		parts = append(parts, fmt.Sprintf("Added %d keyword%s", n, plural(n)))
	}
	var invalid []string
	for _, token := range r.Invalid {
		if token != "" {
			invalid = append(invalid, token)
		}
	}
	if len(invalid) > 0 {
		parts = append(parts, "ignored invalid: "+strings.Join(invalid, ", "))
	}
	if len(r.Duplicate) > 0 {
		parts = append(parts, "skipped duplicates: "+strings.Join(r.Duplicate, ", "))
	}
	if len(parts) == 0 {
		return "No keywords added"
	}
	return strings.Join(parts, "; ")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func (pf *PaletteForm) submit() tea.Cmd {
	pf.commitKeywords()
	pf.statusText = ""

	if verr := pf.form.Validate(); verr != nil {
		logging.Logger.Debug("Palette form invalid", "error", verr)
		pf.statusText = "Please fix the highlighted fields"
		pf.focusFirstError()
		return pf.syncFocus()
	}

	pf.saving = true
	fields := pf.form.Snapshot()
	editing := pf.editing
	drafts := pf.drafts
	palettes := pf.palettes

	save := func() tea.Msg {
		result, err := palettes.Submit(context.Background(), fields, func(domain.SavedPalette) {
			if editing || drafts == nil {
				return
			}
			if err := drafts.Clear(); err != nil {
				logging.Logger.Warn("Failed to clear draft", "error", err)
			}
		})
		return paletteSavedMsg{err: err, result: result}
	}
	return tea.Batch(save, pf.spinner.Tick)
}

func (pf *PaletteForm) focusFirstError() {
	for _, id := range pf.order() {
		if pf.form.FieldError(id) != "" {
			current := pf.form.FocusState().Current
			if current != form.FieldNone {
				pf.form.FocusHandlers(current).OnBlur()
			}
			pf.form.FocusHandlers(id).OnFocus()
			return
		}
	}
}

func (pf *PaletteForm) handleSaved(msg paletteSavedMsg) tea.Cmd {
	pf.saving = false
	if msg.err != nil {
		var verr *domain.ValidationError
		if errors.As(msg.err, &verr) {
			pf.statusText = "Please fix the highlighted fields"
			return nil
		}
		pf.statusText = formatErrorForDisplay(msg.err, pf.width)
		return nil
	}

	pf.form.Close()
	pf.result.Created = msg.result.Created
	pf.result.Palette = &msg.result.Palette
	pf.Completed = true
	return nil
}

// cancel closes the form. A new-palette form keeps its values as a draft.
func (pf *PaletteForm) cancel() {
	pf.commitKeywords()
	pf.form.Close()
	pf.result.Cancelled = true
	pf.Completed = true

	if pf.editing || pf.drafts == nil {
		return
	}

	snapshot := pf.form.Snapshot()
	var err error
	if isBlankForm(snapshot) {
		err = pf.drafts.Clear()
	} else {
		err = pf.drafts.Save(snapshot)
		logging.Logger.Info("Palette draft saved", "name", snapshot.Name)
	}
	if err != nil {
		logging.Logger.Warn("Failed to update draft", "error", err)
	}
}

func isBlankForm(f domain.PaletteFormFields) bool {
	return strings.TrimSpace(f.Name) == "" &&
		strings.TrimSpace(f.Description) == "" &&
		len(f.Keywords) == 0 &&
		len(domain.CompactColors(f.Colors)) == 0
}

func (pf *PaletteForm) View() string {
	if pf.preview != nil {
		return pf.preview.View()
	}

	current := pf.form.FocusState().Current
	var b strings.Builder

	b.WriteString(pf.renderField(form.FieldName, "Name", pf.inputs[form.FieldName].View(), current))
	b.WriteString(pf.renderField(form.FieldDescription, "Description", pf.inputs[form.FieldDescription].View(), current))
	b.WriteString(pf.renderField(form.FieldMode, "Mode", pf.renderMode(), current))

	keywords := pf.form.Keywords()
	chips := make([]string, len(keywords))
	for i, k := range keywords {
		chips[i] = theme.KeywordStyle.Render("#" + k)
	}
	kwLine := strings.Join(chips, " ")
	if kwLine != "" {
		kwLine += " "
	}
	b.WriteString(pf.renderField(form.FieldKeywords, "Keywords", kwLine+pf.inputs[form.FieldKeywords].View(), current))

	b.WriteString("\n" + theme.SubtitleStyle.Render(fmt.Sprintf("Colors (%d/%d)", pf.form.Count(), domain.MaxColorFields)) + "\n")
	for n := 1; n <= pf.form.Count(); n++ {
		id := form.ColorFieldID(n)
		value := strings.TrimSpace(pf.form.Value(id))
		line := pf.inputs[id].View()
		if domain.IsValidHexColor(value) {
			line += " " + theme.Swatch(value, "", 4)
		}
		b.WriteString(pf.renderField(id, fmt.Sprintf("Color %d", n), line, current))
	}

	if pf.saving {
		b.WriteString(fmt.Sprintf("\n%s Saving palette...\n", pf.spinner.View()))
		return b.String()
	}

	if pf.statusText != "" {
		b.WriteString("\n" + theme.ErrorStyle.Render(pf.statusText))
	}
	if pf.notice != "" {
		b.WriteString("\n" + theme.WarningStyle.Render(pf.notice))
	}

	help := make([]string, 0, 8)
	for _, binding := range pf.keys.FormHelp() {
		help = append(help, binding.Help().Key+": "+binding.Help().Desc)
	}
	help = append(help, "esc: cancel")
	b.WriteString("\n" + theme.HelpStyle.Render(formatHelpLine(strings.Join(help, " • "))))
	return b.String()
}

func (pf *PaletteForm) renderField(id form.FieldID, label, content string, current form.FieldID) string {
	labelStyle := theme.FieldLabelStyle
	if id == current {
		labelStyle = theme.FieldLabelFocusedStyle
	}
	line := labelStyle.Width(labelWidth).Render(label) + content + "\n"
	if msg := pf.form.FieldError(id); msg != "" {
		line += lipgloss.NewStyle().PaddingLeft(labelWidth).Render(theme.FieldErrorStyle.Render(msg)) + "\n"
	}
	return line
}

func (pf *PaletteForm) renderMode() string {
	mode := pf.form.Value(form.FieldMode)
	var options []string
	for _, m := range []domain.Mode{domain.ModeLight, domain.ModeDark} {
		if string(m) == mode {
			options = append(options, theme.ModeStyle(mode).Render("● "+string(m)))
		} else {
			options = append(options, theme.MutedStyle.Render("○ "+string(m)))
		}
	}
	return strings.Join(options, "  ")
}

// formatHelpLine formats a help line with styled shortcuts and labels
func formatHelpLine(line string) string {
	parts := strings.Split(line, " • ")
	formatted := make([]string, 0, len(parts))

	for _, part := range parts {
		colonIdx := strings.Index(part, ": ")
		if colonIdx == -1 {
			formatted = append(formatted, part)
			continue
		}
		formatted = append(formatted,
			theme.HelpShortcutStyle.Render(part[:colonIdx])+theme.HelpLabelStyle.Render(": "+part[colonIdx+2:]))
	}

	return strings.Join(formatted, " • ")
}
