package model

import (
	"fmt"
	"strconv"
)

const (
	// DefaultDelay is the reminder interval in seconds used at startup.
	DefaultDelay = 3600
	// FallbackDelay replaces a non-positive delay in trigger arithmetic.
	FallbackDelay = 600
	// DefaultNotificationText is the initial notification title.
	DefaultNotificationText = "Break time! 🦆"
)

// State is the authoritative snapshot of application data.
//
// DelayText holds exactly what the user typed. Delay holds the last value
// that parsed successfully, or zero after a failed parse.
type State struct {
	Counter          int
	Delay            int
	DelayText        string
	NotificationText string
	LogMessage       string
}

// NewState returns the startup state.
func NewState() State {
	return State{
		Counter:          0,
		Delay:            DefaultDelay,
		DelayText:        formatDelay(DefaultDelay),
		NotificationText: DefaultNotificationText,
	}
}

// EffectiveDelay returns the interval used for reminder arithmetic.
// Stored Delay is never rewritten by this substitution.
func (state State) EffectiveDelay() int {
	if state.Delay > 0 {
		return state.Delay
	}
	return FallbackDelay
}

// ReminderDue reports whether the current counter sits on a reminder boundary.
func (state State) ReminderDue() bool {
	return state.Counter%state.EffectiveDelay() == 0
}

// NextBreakIn returns the seconds left until the next reminder.
func (state State) NextBreakIn() int {
	delay := state.EffectiveDelay()
	return delay - state.Counter%delay
}

// RunningLabel formats the elapsed time line.
func (state State) RunningLabel() string {
	return fmt.Sprintf("Running for %d seconds", state.Counter)
}

// NextBreakLabel formats the countdown line.
func (state State) NextBreakLabel() string {
	return fmt.Sprintf("Next break in %d seconds", state.NextBreakIn())
}

func formatDelay(delay int) string {
	return strconv.Itoa(delay)
}
