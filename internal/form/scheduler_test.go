package form

import (
	"sync"
	"time"
)

// fakeScheduler queues callbacks until fire is called
type fakeScheduler struct {
	mu     sync.Mutex
	tasks  []*fakeTimer
	delays []time.Duration
}

type fakeTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(delay time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{fn: fn}
	s.tasks = append(s.tasks, t)
	s.delays = append(s.delays, delay)
	return t
}

// fire runs every queued callback that was not stopped
func (s *fakeScheduler) fire() int {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = nil
	s.mu.Unlock()

	ran := 0
	for _, t := range tasks {
		if t.stopped {
			continue
		}
		t.fired = true
		t.fn()
		ran++
	}
	return ran
}
