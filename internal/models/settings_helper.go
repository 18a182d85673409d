package models

import (
	"fmt"
	"strconv"
)

// Setting keys as stored in the settings table.
const (
	SettingDarkMode             = "darkModeEnabled"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingTimezone             = "timezone"
	SettingMotivationEndpoint   = "motivation_endpoint"
	SettingChatEndpoint         = "chat_endpoint"
)

// ToMap flattens settings into key/value pairs for the settings table.
func (s Settings) ToMap() map[string]string {
	return map[string]string{
		SettingDarkMode:             strconv.FormatBool(s.DarkMode),
		SettingNotificationsEnabled: strconv.FormatBool(s.NotificationsEnabled),
		SettingTimezone:             s.Timezone,
		SettingMotivationEndpoint:   s.MotivationEndpoint,
		SettingChatEndpoint:         s.ChatEndpoint,
	}
}

// SettingsFromMap rebuilds settings from stored pairs. Missing keys keep their defaults.
func SettingsFromMap(values map[string]string) (Settings, error) {
	s := DefaultSettings()
	for key, value := range values {
		switch key {
		case SettingDarkMode:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			s.DarkMode = b
		case SettingNotificationsEnabled:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			s.NotificationsEnabled = b
		case SettingTimezone:
			s.Timezone = value
		case SettingMotivationEndpoint:
			s.MotivationEndpoint = value
		case SettingChatEndpoint:
			s.ChatEndpoint = value
		}
	}
	return s, nil
}
