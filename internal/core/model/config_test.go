package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, DefaultDelay, config.Delay)
	assert.Equal(t, DefaultNotificationText, config.NotificationText)
	assert.Equal(t, time.Second, config.TickInterval)
	assert.True(t, config.Notifications.Enabled)
	assert.Equal(t, SoundReminder, config.Notifications.Sound)
	assert.False(t, config.Notifications.FailFast)
	assert.True(t, config.Tray)
}

func TestDefaultConfigInitialStateMatchesNewState(t *testing.T) {
	assert.Equal(t, NewState(), DefaultConfig().InitialState())
}

func TestInitialStateOverrides(t *testing.T) {
	config := DefaultConfig()
	config.Delay = 1500
	config.NotificationText = "Drink water"

	state := config.InitialState()
	assert.Equal(t, 1500, state.Delay)
	assert.Equal(t, "1500", state.DelayText)
	assert.Equal(t, "Drink water", state.NotificationText)
	assert.Equal(t, 0, state.Counter)
}

func TestInitialStateKeepsDefaultTextWhenEmpty(t *testing.T) {
	config := DefaultConfig()
	config.NotificationText = ""

	assert.Equal(t, DefaultNotificationText, config.InitialState().NotificationText)
}
