package model

import "time"

// SoundName selects the audible cue played with a reminder.
type SoundName string

const (
	SoundReminder SoundName = "reminder"
	SoundSilent   SoundName = "silent"
)

// NotificationConfig controls how reminders reach the desktop.
type NotificationConfig struct {
	Enabled  bool
	Sound    SoundName
	FailFast bool
}

// Config contains startup settings for the application.
type Config struct {
	Delay            int
	NotificationText string
	TickInterval     time.Duration
	Notifications    NotificationConfig
	Tray             bool
}

// DefaultConfig returns the built-in startup settings.
func DefaultConfig() Config {
	return Config{
		Delay:            DefaultDelay,
		NotificationText: DefaultNotificationText,
		TickInterval:     time.Second,
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   SoundReminder,
		},
		Tray: true,
	}
}

// InitialState converts the config into the state the run loop starts from.
func (config Config) InitialState() State {
	state := NewState()
	state.Delay = config.Delay
	state.DelayText = formatDelay(config.Delay)
	if config.NotificationText != "" {
		state.NotificationText = config.NotificationText
	}
	return state
}
