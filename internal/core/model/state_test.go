package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateDefaults(t *testing.T) {
	state := NewState()

	assert.Equal(t, 0, state.Counter)
	assert.Equal(t, 3600, state.Delay)
	assert.Equal(t, "3600", state.DelayText)
	assert.Equal(t, "Break time! 🦆", state.NotificationText)
	assert.Empty(t, state.LogMessage)
}

func TestEffectiveDelay(t *testing.T) {
	cases := map[int]int{
		3600: 3600,
		1:    1,
		0:    600,
		-1:   600,
		-900: 600,
	}
	for delay, want := range cases {
		state := State{Delay: delay}
		assert.Equal(t, want, state.EffectiveDelay(), "delay %d", delay)
	}
}

func TestNextBreakIn(t *testing.T) {
	state := NewState()
	assert.Equal(t, 3600, state.NextBreakIn())

	state.Counter = 3599
	assert.Equal(t, 1, state.NextBreakIn())

	state.Counter = 3600
	assert.Equal(t, 3600, state.NextBreakIn())
}

func TestNextBreakInGuardsZeroDelay(t *testing.T) {
	state := State{Counter: 100, Delay: 0}
	assert.Equal(t, 500, state.NextBreakIn())
	assert.Equal(t, "Next break in 500 seconds", state.NextBreakLabel())
}

func TestLabels(t *testing.T) {
	state := State{Counter: 42, Delay: 60}

	assert.Equal(t, "Running for 42 seconds", state.RunningLabel())
	assert.Equal(t, "Next break in 18 seconds", state.NextBreakLabel())
}

func TestReminderDue(t *testing.T) {
	state := State{Counter: 1200, Delay: -3}
	assert.True(t, state.ReminderDue())

	state.Counter = 1201
	assert.False(t, state.ReminderDue())
}
