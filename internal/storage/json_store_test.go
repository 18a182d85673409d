package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "bodysoul.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func TestJSONStoreProfileRoundTrip(t *testing.T) {
	store := setupJSONStore(t)

	if _, err := store.LoadProfile(); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("LoadProfile() error = %v, want ErrProfileNotFound", err)
	}

	p := models.NewProfile("2024-01-01")
	p.Name = "Ana"
	p.Points = 12.5
	p.Badges = append(p.Badges, "Week 1 Warrior")
	log := models.NewDailyLog()
	log.ExerciseCompleted = true
	log.TasksCompleted[constants.TaskExercise] = models.TaskStatus{Completed: true, SwipedHidden: true}
	p.DailyLogs["2024-01-01"] = log

	if err := store.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	// Reopen from disk
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got, err := reopened.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}

	if got.Name != "Ana" || got.Points != 12.5 {
		t.Errorf("got name=%q points=%v", got.Name, got.Points)
	}
	if got.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", got.SchemaVersion, CurrentSchemaVersion)
	}
	st := got.DailyLogs["2024-01-01"].TasksCompleted[constants.TaskExercise]
	if !st.Completed || !st.SwipedHidden {
		t.Errorf("exercise status = %+v", st)
	}
	if ctx := got.DailyLogs["2024-01-01"].MakeMeQuit.ContextLogged; ctx == nil || *ctx != "" {
		t.Errorf("ContextLogged = %v, want empty string", ctx)
	}
}

func TestJSONStoreDeleteProfile(t *testing.T) {
	store := setupJSONStore(t)
	if err := store.SaveProfile(models.NewProfile("2024-01-01")); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	if err := store.DeleteProfile(); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if _, err := store.LoadProfile(); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("LoadProfile() error = %v, want ErrProfileNotFound", err)
	}

	// Settings survive a profile reset
	if _, err := store.GetSettings(); err != nil {
		t.Errorf("GetSettings() error = %v", err)
	}
}

func TestJSONStoreSettings(t *testing.T) {
	store := setupJSONStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("GetSettings() = %+v, want defaults", settings)
	}

	settings.DarkMode = true
	settings.Timezone = "UTC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !got.DarkMode || got.Timezone != "UTC" {
		t.Errorf("GetSettings() = %+v", got)
	}
}

func TestJSONStoreInitKeepsExistingData(t *testing.T) {
	store := setupJSONStore(t)
	p := models.NewProfile("2024-01-01")
	p.Name = "Kept"
	if err := store.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	again := NewJSONStore(store.GetConfigPath())
	if err := again.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	got, err := again.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if got.Name != "Kept" {
		t.Errorf("Name = %q, want Kept", got.Name)
	}
}

func TestJSONStoreLoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestJSONStoreFilePermissions(t *testing.T) {
	store := setupJSONStore(t)
	info, err := os.Stat(store.GetConfigPath())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}
}
