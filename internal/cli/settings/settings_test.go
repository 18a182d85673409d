package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return &cli.Context{Store: store}
}

func TestSettingsCmd_List(t *testing.T) {
	ctx := setupTestDB(t)

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx := setupTestDB(t)

	dark := true
	notify := false
	tz := "Europe/Berlin"
	chat := " http://localhost:8080/chat "
	cmd := &SettingsCmd{
		DarkMode:             &dark,
		NotificationsEnabled: &notify,
		Timezone:             &tz,
		ChatURL:              &chat,
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if !settings.DarkMode {
		t.Error("DarkMode = false, want true")
	}
	if settings.NotificationsEnabled {
		t.Error("NotificationsEnabled = true, want false")
	}
	if settings.Timezone != "Europe/Berlin" {
		t.Errorf("Timezone = %q, want %q", settings.Timezone, "Europe/Berlin")
	}
	if settings.ChatEndpoint != "http://localhost:8080/chat" {
		t.Errorf("ChatEndpoint = %q, want trimmed URL", settings.ChatEndpoint)
	}
}

func TestSettingsCmd_InvalidTimezone(t *testing.T) {
	ctx := setupTestDB(t)

	tz := "Not/AZone"
	cmd := &SettingsCmd{Timezone: &tz}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid timezone")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.Timezone != "Local" {
		t.Errorf("Timezone = %q, want unchanged %q", settings.Timezone, "Local")
	}
}
