package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"tinta/internal/adapters/browser"
	"tinta/internal/adapters/clipboard"
	"tinta/internal/logging"
	"tinta/internal/services"
	"tinta/internal/ui"
)

// sessionModel wraps ui.Model to log the session lifetime
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates a model for each SSH session. Copy actions write to
// the client's terminal clipboard; drafts are not kept for remote sessions.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	export := services.NewExportService(
		clipboard.NewOSC52Clipboard(sess),
		browser.NewUnavailable("no browser is available over SSH, copy the link instead"),
	)

	opts := s.opts.ModelOptions
	opts.DevMode = false

	model := ui.NewModel(s.palettes, s.generation, export, nil, opts)
	return &sessionModel{
			Model:     model,
			sessionID: sessionID,
			startTime: time.Now(),
		}, []tea.ProgramOption{
			tea.WithAltScreen(),
		}
}
