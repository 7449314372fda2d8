package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tinta/internal/form"
)

// scheduledCallbackMsg fires a deferred form callback on the UI loop
type scheduledCallbackMsg struct {
	id        uint64
	scheduler *teaScheduler
}

// teaScheduler implements form.Scheduler with bubbletea ticks so deferred
// callbacks run on the UI event loop. AfterFunc only queues the tick; the
// owner must return Cmds() from its Update for the tick to start.
type teaScheduler struct {
	mu     sync.Mutex
	next   uint64
	queued []tea.Cmd
	tasks  map[uint64]func()
}

type teaTimer struct {
	id        uint64
	scheduler *teaScheduler
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tasks: make(map[uint64]func())}
}

// AfterFunc implements form.Scheduler
func (s *teaScheduler) AfterFunc(delay time.Duration, fn func()) form.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(delay, func(time.Time) tea.Msg {
		return scheduledCallbackMsg{id: id, scheduler: s}
	}))
	return &teaTimer{id: id, scheduler: s}
}

// Cmds drains the ticks queued since the last call
func (s *teaScheduler) Cmds() tea.Cmd {
	s.mu.Lock()
	cmds := s.queued
	s.queued = nil
	s.mu.Unlock()

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Fire runs the callback for msg if it belongs to s and was not stopped
func (s *teaScheduler) Fire(msg scheduledCallbackMsg) bool {
	if msg.scheduler != s {
		return false
	}

	s.mu.Lock()
	fn, ok := s.tasks[msg.id]
	delete(s.tasks, msg.id)
	s.mu.Unlock()

	if ok {
		fn()
	}
	return ok
}

// Stop implements form.Timer
func (t *teaTimer) Stop() bool {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()

	_, ok := t.scheduler.tasks[t.id]
	delete(t.scheduler.tasks, t.id)
	return ok
}
