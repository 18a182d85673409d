package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage"
)

var _ storage.Provider = (*Store)(nil)
var _ storage.Migrator = (*Store)(nil)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "bodysoul.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitCreatesDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("GetSettings() = %+v, want defaults", settings)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	settings := models.DefaultSettings()
	settings.DarkMode = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	if err := store.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !got.DarkMode {
		t.Error("Init() overwrote saved settings")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.LoadProfile(); !errors.Is(err, storage.ErrProfileNotFound) {
		t.Fatalf("LoadProfile() error = %v, want ErrProfileNotFound", err)
	}

	p := models.NewProfile("2024-01-01")
	p.Name = "Ana"
	p.IsRegistered = true
	p.Points = 27.5
	cal := 1600
	log := models.NewDailyLog()
	log.WeightControl.CaloriesTracked = &cal
	log.TasksCompleted[constants.TaskWeightControl] = models.TaskStatus{Completed: true}
	p.DailyLogs["2024-01-01"] = log

	if err := store.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	// Overwrite keeps a single record
	p.Points = 30
	if err := store.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	var count int
	if err := store.GetDB().QueryRow("SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 1 {
		t.Errorf("records count = %d, want 1", count)
	}

	path := store.GetConfigPath()
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if got.Name != "Ana" || got.Points != 30 || !got.IsRegistered {
		t.Errorf("LoadProfile() = %+v", got)
	}
	gotCal := got.DailyLogs["2024-01-01"].WeightControl.CaloriesTracked
	if gotCal == nil || *gotCal != 1600 {
		t.Errorf("CaloriesTracked = %v, want 1600", gotCal)
	}
}

func TestDeleteProfileKeepsSettings(t *testing.T) {
	store := setupTestStore(t)
	if err := store.SaveProfile(models.NewProfile("2024-01-01")); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	if err := store.DeleteProfile(); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if _, err := store.LoadProfile(); !errors.Is(err, storage.ErrProfileNotFound) {
		t.Errorf("LoadProfile() error = %v, want ErrProfileNotFound", err)
	}
	if _, err := store.GetSettings(); err != nil {
		t.Errorf("GetSettings() error = %v", err)
	}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestMigrateUpToDate(t *testing.T) {
	store := setupTestStore(t)
	count, err := store.Migrate(nil)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Migrate() applied %d, want 0 after Init", count)
	}
}

func TestSaveProfileAfterClose(t *testing.T) {
	store := setupTestStore(t)
	store.Close()
	if err := store.SaveProfile(models.NewProfile("2024-01-01")); err == nil {
		t.Error("SaveProfile() on a closed store should fail")
	}
}
