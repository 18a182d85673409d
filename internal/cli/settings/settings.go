package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DarkMode             *bool   `help:"Use the dark color palette in the TUI."`
	NotificationsEnabled *bool   `help:"Enable or disable desktop notifications."`
	Timezone             *string `help:"IANA timezone used to decide what 'today' is (e.g., 'America/New_York', 'UTC', 'Local')."`
	MotivationURL        *string `name:"motivation-url" help:"Endpoint of the motivation service. Empty uses canned messages only."`
	ChatURL              *string `name:"chat-url" help:"Endpoint of the coach chat service. Empty uses canned messages only."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Dark Mode:             %v\n", settings.DarkMode)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Println("\nCoach Settings:")
		fmt.Printf("  Motivation Endpoint:   %s\n", orNone(settings.MotivationEndpoint))
		fmt.Printf("  Chat Endpoint:         %s\n", orNone(settings.ChatEndpoint))
		return nil
	}

	updated := false
	if c.DarkMode != nil {
		settings.DarkMode = *c.DarkMode
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.Timezone != nil {
		tz := strings.TrimSpace(*c.Timezone)
		if !utils.ValidateTimezone(tz) {
			return fmt.Errorf("invalid timezone %q", tz)
		}
		if tz == "" {
			tz = "Local"
		}
		settings.Timezone = tz
		updated = true
	}
	if c.MotivationURL != nil {
		settings.MotivationEndpoint = strings.TrimSpace(*c.MotivationURL)
		updated = true
	}
	if c.ChatURL != nil {
		settings.ChatEndpoint = strings.TrimSpace(*c.ChatURL)
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
