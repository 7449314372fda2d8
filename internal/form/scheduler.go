package form

import "time"

// Timer is a pending deferred callback. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after delay. Implementations decide on which
// goroutine fn runs; Form serializes access to its state either way. fn must
// not be invoked before AfterFunc returns.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Timer
}

// TimerScheduler schedules callbacks with time.AfterFunc
type TimerScheduler struct{}

// AfterFunc implements Scheduler
func (TimerScheduler) AfterFunc(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}
