package reminder

// Message is a state transition request consumed by Update.
// The set of implementations is closed to this package.
type Message interface {
	isMessage()
}

// Tick signals that one second has elapsed. The Increment button emits it too.
type Tick struct{}

// DelayTextChanged carries the delay field's new content.
type DelayTextChanged struct {
	Text string
}

// NotificationTextChanged carries the notification field's new content.
type NotificationTextChanged struct {
	Text string
}

// RawInputOccurred stands for any platform input event without a handler.
type RawInputOccurred struct{}

// LogMessageSet overwrites the status line.
type LogMessageSet struct {
	Text string
}

func (Tick) isMessage()                    {}
func (DelayTextChanged) isMessage()        {}
func (NotificationTextChanged) isMessage() {}
func (RawInputOccurred) isMessage()        {}
func (LogMessageSet) isMessage()           {}
