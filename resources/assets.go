package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	iconPath  = "icon/icon.png"
	soundDir  = "sounds/"
	iconAlias = "icon.png"
)

//go:embed icon/icon.png
var iconFS embed.FS

//go:embed sounds/*.wav
var soundFS embed.FS

var (
	iconOnce     sync.Once
	iconResource fyne.Resource
	iconErr      error
	soundCache   sync.Map
)

// Icon returns the application icon, loading it on first use.
func Icon() (fyne.Resource, error) {
	iconOnce.Do(func() {
		data, err := iconFS.ReadFile(iconPath)
		if err != nil {
			iconErr = fmt.Errorf("load resource %s: %w", iconPath, err)
			return
		}
		iconResource = fyne.NewStaticResource(iconAlias, data)
	})
	return iconResource, iconErr
}

// MustIcon returns the application icon or panics on error.
func MustIcon() fyne.Resource {
	resource, err := Icon()
	if err != nil {
		panic(err)
	}
	return resource
}

// Sound returns the raw bytes of an embedded sound file.
func Sound(fileName string) ([]byte, error) {
	path := soundDir + fileName
	if cached, ok := soundCache.Load(path); ok {
		return cached.([]byte), nil
	}

	data, err := soundFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}
	soundCache.Store(path, data)
	return data, nil
}

// ReminderSound returns the chime played with reminders.
func ReminderSound() ([]byte, error) {
	return Sound("reminder.wav")
}
