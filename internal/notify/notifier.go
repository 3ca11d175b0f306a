// Package notify shows break reminders as desktop notifications.
package notify

import (
	"fmt"
	"log"

	"timerapp/internal/core/model"
	"timerapp/internal/core/reminder"

	"github.com/gen2brain/beeep"
)

// Player plays an audible cue.
type Player interface {
	Play() error
}

// Notifier shows reminders through the OS notification service.
type Notifier struct {
	cfg           model.NotificationConfig
	toast         func(title, message string) error
	player        Player
	soundDisabled bool
}

// New creates a notifier. A nil player means reminders are silent.
func New(cfg model.NotificationConfig, player Player) *Notifier {
	return &Notifier{
		cfg:    cfg,
		toast:  beeepToast,
		player: player,
	}
}

// Show displays the notification if notifications are enabled. Sound
// problems are logged and never fail the call.
func (notifier *Notifier) Show(notification reminder.Notification) error {
	if !notifier.cfg.Enabled {
		return nil
	}

	if notifier.wantsSound(notification) {
		if err := notifier.player.Play(); err != nil {
			log.Printf("Reminder sound disabled: %v", err)
			notifier.soundDisabled = true
		}
	}

	if err := notifier.toast(notification.Title, notification.Body); err != nil {
		return fmt.Errorf("show toast %q: %w", notification.Title, err)
	}
	return nil
}

// IsEnabled returns true if notifications are enabled.
func (notifier *Notifier) IsEnabled() bool {
	return notifier.cfg.Enabled
}

func (notifier *Notifier) wantsSound(notification reminder.Notification) bool {
	return notification.Sound == reminder.SoundReminder &&
		notifier.cfg.Sound != model.SoundSilent &&
		notifier.player != nil &&
		!notifier.soundDisabled
}

func beeepToast(title, message string) error {
	return beeep.Notify(title, message, "")
}
