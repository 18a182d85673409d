package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage"
)

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath := setupTestStore(t, false)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("init command failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _ := setupTestStore(t, false)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, _ := setupTestStore(t, true)

	profile := models.NewProfile("2024-03-04")
	profile.Name = "Ana"
	if err := ctx.Store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	cmd := &InitCmd{Force: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	if _, err := ctx.Store.LoadProfile(); err != storage.ErrProfileNotFound {
		t.Errorf("LoadProfile() after --force error = %v, want %v", err, storage.ErrProfileNotFound)
	}
}

func TestInitCmd_ForceSameSource(t *testing.T) {
	ctx, dbPath := setupTestStore(t, true)

	cmd := &InitCmd{Force: true, Source: dbPath}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error when source and destination are the same")
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("store should not be deleted: %v", err)
	}
}

func TestInitCmd_CopiesFromSource(t *testing.T) {
	sourcePath := filepath.Join(t.TempDir(), "source.json")
	source := storage.NewJSONStore(sourcePath)
	if err := source.Init(); err != nil {
		t.Fatalf("failed to init source: %v", err)
	}

	settings := models.DefaultSettings()
	settings.DarkMode = true
	if err := source.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save source settings: %v", err)
	}
	profile := models.NewProfile("2024-03-04")
	profile.Name = "Ana"
	profile.Points = 42
	if err := source.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save source profile: %v", err)
	}

	ctx, _ := setupTestStore(t, false)
	cmd := &InitCmd{Source: sourcePath}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init --source failed: %v", err)
	}

	got, err := ctx.Store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if got.Name != "Ana" || got.Points != 42 {
		t.Errorf("copied profile = {%s %v}, want {Ana 42}", got.Name, got.Points)
	}

	gotSettings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !gotSettings.DarkMode {
		t.Error("copied settings should have dark mode enabled")
	}
}
