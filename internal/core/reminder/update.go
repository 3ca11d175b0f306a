package reminder

import (
	"strconv"

	"timerapp/internal/core/model"
)

// Sound selects the audible cue of a notification.
type Sound int

const (
	SoundSilent Sound = iota
	SoundReminder
)

// Duration selects how long a notification stays on screen.
type Duration int

const (
	DurationShort Duration = iota
	DurationLong
)

// Notification is a request for the notification collaborator.
type Notification struct {
	Title    string
	Body     string
	Sound    Sound
	Duration Duration
}

// Update applies one message to the state. It never fails: parse errors are
// folded into LogMessage. A non-nil Notification means a reminder is due and
// must be shown by the caller.
func Update(state model.State, msg Message) (model.State, *Notification) {
	switch msg := msg.(type) {
	case Tick:
		state.Counter++
		if state.ReminderDue() {
			return state, &Notification{
				Title:    state.NotificationText,
				Sound:    SoundReminder,
				Duration: DurationShort,
			}
		}
	case DelayTextChanged:
		state.DelayText = msg.Text
		delay, err := ParseDelay(msg.Text)
		if err != nil {
			state.DelayText = ""
			state.Delay = 0
			state = setLogMessage(state, err.Error())
			break
		}
		state.Delay = delay
		state = setLogMessage(state, "")
	case NotificationTextChanged:
		state.NotificationText = msg.Text
	case LogMessageSet:
		state = setLogMessage(state, msg.Text)
	case RawInputOccurred:
	}
	return state, nil
}

// ParseDelay parses a signed base-10 32-bit integer. Whitespace, decimal
// points and empty input are rejected.
func ParseDelay(text string) (int, error) {
	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

func setLogMessage(state model.State, text string) model.State {
	state.LogMessage = text
	return state
}
