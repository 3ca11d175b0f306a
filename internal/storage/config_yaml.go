package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"timerapp/internal/core/model"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

type yamlNotifications struct {
	Enabled  *bool  `yaml:"enabled"`
	Sound    string `yaml:"sound"`
	FailFast *bool  `yaml:"fail_fast"`
}

type yamlConfig struct {
	DelaySeconds     int               `yaml:"delay_seconds"`
	NotificationText string            `yaml:"notification_text"`
	Notifications    yamlNotifications `yaml:"notifications"`
	Tray             *bool             `yaml:"tray"`
}

// LoadConfig reads startup settings from the user config directory.
// If the config file does not exist, default settings are returned.
// The file is never written: runtime edits are not persisted.
func LoadConfig(appName string) (model.Config, error) {
	configPath, err := ConfigPath(appName)
	if err != nil {
		return model.DefaultConfig(), err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads startup settings from an explicit path.
func LoadConfigFile(configPath string) (model.Config, error) {
	config := model.DefaultConfig()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	if err := applyYamlConfig(&config, fileData); err != nil {
		return model.DefaultConfig(), err
	}
	return config, nil
}

// ConfigPath returns where LoadConfig looks for the config file.
func ConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

func applyYamlConfig(config *model.Config, fileData yamlConfig) error {
	if fileData.DelaySeconds > 0 {
		config.Delay = fileData.DelaySeconds
	}
	if fileData.NotificationText != "" {
		config.NotificationText = fileData.NotificationText
	}
	if fileData.Tray != nil {
		config.Tray = *fileData.Tray
	}

	notifications := fileData.Notifications
	if notifications.Enabled != nil {
		config.Notifications.Enabled = *notifications.Enabled
	}
	if notifications.FailFast != nil {
		config.Notifications.FailFast = *notifications.FailFast
	}
	switch sound := model.SoundName(strings.ToLower(strings.TrimSpace(notifications.Sound))); sound {
	case "":
	case model.SoundReminder, model.SoundSilent:
		config.Notifications.Sound = sound
	default:
		return fmt.Errorf("parse config yaml: unknown notification sound %q", notifications.Sound)
	}
	return nil
}
