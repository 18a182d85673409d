package models

import "github.com/julianstephens/bodysoul/internal/constants"

// Settings are device preferences stored apart from the profile, so a reset keeps them.
type Settings struct {
	DarkMode             bool
	NotificationsEnabled bool
	Timezone             string
	MotivationEndpoint   string
	ChatEndpoint         string
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:             false,
		NotificationsEnabled: true,
		Timezone:             "Local",
		MotivationEndpoint:   constants.DefaultMotivationEndpoint,
		ChatEndpoint:         constants.DefaultChatEndpoint,
	}
}
