package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeaScheduler_FireRunsQueuedCallback(t *testing.T) {
	s := newTeaScheduler()
	ran := 0
	s.AfterFunc(time.Millisecond, func() { ran++ })

	require.NotNil(t, s.Cmds())
	assert.Nil(t, s.Cmds(), "queue is drained")

	assert.True(t, s.Fire(scheduledCallbackMsg{id: 0, scheduler: s}))
	assert.Equal(t, 1, ran)

	assert.False(t, s.Fire(scheduledCallbackMsg{id: 0, scheduler: s}), "callbacks run once")
	assert.Equal(t, 1, ran)
}

func TestTeaScheduler_StoppedTimerDoesNotFire(t *testing.T) {
	s := newTeaScheduler()
	ran := false
	timer := s.AfterFunc(time.Millisecond, func() { ran = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing pending")
	assert.False(t, s.Fire(scheduledCallbackMsg{id: 0, scheduler: s}))
	assert.False(t, ran)
}

func TestTeaScheduler_IgnoresOtherSchedulers(t *testing.T) {
	old := newTeaScheduler()
	current := newTeaScheduler()
	ran := false
	current.AfterFunc(time.Millisecond, func() { ran = true })

	assert.False(t, current.Fire(scheduledCallbackMsg{id: 0, scheduler: old}))
	assert.False(t, ran)
}
