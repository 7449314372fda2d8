package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/services"
	"tinta/internal/theme"
)

type generatePhase int

const (
	phasePrompting generatePhase = iota
	phaseGenerating
	phaseSelecting
	phaseFailed
)

// generationProgressMsg carries an intermediate generation state
type generationProgressMsg struct {
	source *GenerateView
	state  services.GenerationState
}

// generationDoneMsg carries the final generation outcome
type generationDoneMsg struct {
	err    error
	result *services.GenerateResult
	source *GenerateView
}

// GenerateViewResult contains the result of the generation flow
type GenerateViewResult struct {
	Cancelled bool
	// Launch is set when the user chose colors to save
	Launch *domain.LaunchContext
}

// GenerateView asks for a prompt, runs the AI generation with live progress
// and lets the user pick colors from the result
type GenerateView struct {
	Completed  bool
	cancel     context.CancelFunc
	events     chan tea.Msg
	form       *huh.Form
	generation *services.GenerationService
	grid       *SelectionGrid
	keys       *KeyMap
	notice     string
	phase      generatePhase
	request    services.GenerateRequest
	result     GenerateViewResult
	spinner    spinner.Model
	state      services.GenerationState
	width      int
}

// NewGenerateView creates the generation flow with the given defaults
func NewGenerateView(
	generation *services.GenerationService,
	keys *KeyMap,
	defaultCreativity domain.Creativity,
	defaultTotalColors int,
) *GenerateView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	gv := &GenerateView{
		generation: generation,
		keys:       keys,
		request: services.GenerateRequest{
			Creativity:  string(defaultCreativity),
			TotalColors: strconv.Itoa(defaultTotalColors),
		},
		spinner: s,
		width:   80,
	}

	creativityOptions := make([]huh.Option[string], len(domain.Creativities))
	for i, c := range domain.Creativities {
		creativityOptions[i] = huh.NewOption(string(c), string(c))
	}

	gv.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Describe your palette").
				Placeholder("a calm beach at dawn").
				CharLimit(500).
				Value(&gv.request.Prompt).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("prompt required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Number of colors").
				Description(fmt.Sprintf("1 to %d, empty for %d", domain.MaxColorFields, domain.DefaultColorFields)).
				Value(&gv.request.TotalColors),
			huh.NewSelect[string]().
				Title("Creativity").
				Options(creativityOptions...).
				Value(&gv.request.Creativity),
		),
	)

	return gv
}

func (gv *GenerateView) Init() tea.Cmd {
	return gv.form.Init()
}

func (gv *GenerateView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		gv.width = sizeMsg.Width
		if gv.grid != nil {
			gv.grid.width = sizeMsg.Width
		}
	}

	switch msg := msg.(type) {
	case generationProgressMsg:
		if msg.source != gv {
			return gv, nil
		}
		gv.state = msg.state
		return gv, gv.listen()

	case generationDoneMsg:
		if msg.source != gv {
			return gv, nil
		}
		gv.finish(msg)
		return gv, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && (keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c") {
		gv.close()
		return gv, nil
	}

	switch gv.phase {
	case phasePrompting:
		form, cmd := gv.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			gv.form = f
		}
		if gv.form.State == huh.StateCompleted {
			return gv, gv.start()
		}
		return gv, cmd

	case phaseGenerating:
		if _, ok := msg.(spinner.TickMsg); ok {
			var cmd tea.Cmd
			gv.spinner, cmd = gv.spinner.Update(msg)
			return gv, cmd
		}

	case phaseSelecting:
		updated, cmd := gv.grid.Update(msg)
		gv.grid = updated.(*SelectionGrid)
		if gv.grid.Completed {
			launch := gv.grid.Launch()
			gv.result.Launch = &launch
			gv.Completed = true
		}
		return gv, cmd

	case phaseFailed:
		if _, ok := msg.(tea.KeyMsg); ok {
			gv.close()
		}
	}

	return gv, nil
}

// start launches the generation in the background. Progress and the final
// outcome come back through gv.events.
func (gv *GenerateView) start() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	gv.cancel = cancel
	gv.events = make(chan tea.Msg, 8)
	gv.phase = phaseGenerating
	gv.state = services.GenerationState{Loading: true, Stage: services.StageColors}

	events := gv.events
	req := gv.request
	send := func(msg tea.Msg) {
		select {
		case events <- msg:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(events)
		result, err := gv.generation.Generate(ctx, req, func(state services.GenerationState) {
			send(generationProgressMsg{source: gv, state: state})
		})
		send(generationDoneMsg{err: err, result: result, source: gv})
	}()

	return tea.Batch(gv.listen(), gv.spinner.Tick)
}

// listen waits for the next generation event
func (gv *GenerateView) listen() tea.Cmd {
	events := gv.events
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (gv *GenerateView) finish(msg generationDoneMsg) {
	if errors.Is(msg.err, context.Canceled) {
		gv.phase = phaseFailed
		return
	}

	result := msg.result
	if msg.err != nil {
		logging.Logger.Warn("Generation failed", "error", msg.err)
		if gv.state.Error == "" {
			gv.state.Error = msg.err.Error()
		}
		// Colors that arrived stay selectable when only the text failed
		if result == nil || len(result.Colors) == 0 {
			gv.phase = phaseFailed
			return
		}
	}

	if len(result.Colors) == 0 {
		gv.phase = phaseFailed
		gv.state.Error = "The AI did not return any valid colors. Please try again."
		return
	}

	var notices []string
	if msg.err != nil {
		notices = append(notices, gv.state.Error)
	}
	if result.Capped {
		notices = append(notices, fmt.Sprintf("Limited to %d colors", domain.MaxColorFields))
	}
	gv.notice = strings.Join(notices, "\n")
	gv.phase = phaseSelecting
	gv.grid = NewSelectionGrid(gv.keys, result.Items(), result.Text())
	gv.grid.width = gv.width
}

func (gv *GenerateView) close() {
	if gv.cancel != nil {
		gv.cancel()
	}
	gv.result.Cancelled = gv.result.Launch == nil
	gv.Completed = true
}

// Result returns the flow result
func (gv *GenerateView) Result() GenerateViewResult {
	return gv.result
}

func (gv *GenerateView) View() string {
	switch gv.phase {
	case phasePrompting:
		return gv.form.View()

	case phaseGenerating:
		var b strings.Builder
		b.WriteString(fmt.Sprintf("\n%s %s\n", gv.spinner.View(), gv.state.StageLabel()))
		if len(gv.state.Colors) > 0 {
			b.WriteString("\n" + theme.Strip(gv.state.Colors, 4) + "\n")
		}
		if gv.state.Title != "" {
			b.WriteString("\n" + theme.SubtitleStyle.Render(gv.state.Title))
		}
		if gv.state.Description != "" {
			b.WriteString("\n" + theme.PaletteDescStyle.Render(gv.state.Description))
		}
		b.WriteString("\n" + theme.HelpStyle.Render("esc: cancel"))
		return b.String()

	case phaseSelecting:
		view := gv.grid.View()
		if gv.notice != "" {
			view = theme.WarningStyle.Render(gv.notice) + "\n" + view
		}
		return view

	case phaseFailed:
		text := gv.state.Error
		if text == "" {
			text = "Generation cancelled"
		}
		return "\n" + theme.ErrorStyle.Render(text) + "\n" + theme.HelpStyle.Render("press any key to go back")
	}
	return ""
}
