package backups

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/bodysoul/internal/backup"
	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage"
)

func setupJSONStore(t *testing.T, name string) (*cli.Context, *storage.JSONStore) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "bodysoul.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	saveName(t, store, name)
	return &cli.Context{Store: store}, store
}

func saveName(t *testing.T, store *storage.JSONStore, name string) {
	t.Helper()
	profile := models.NewProfile("2024-03-04")
	profile.Name = name
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}
}

func loadName(t *testing.T, store *storage.JSONStore) string {
	t.Helper()
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	profile, err := store.LoadProfile()
	if err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	return profile.Name
}

func listBackups(t *testing.T, ctx *cli.Context) []backup.Info {
	t.Helper()
	mgr, err := backup.NewManager(ctx.Store.GetConfigPath())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	return backups
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, _ := setupJSONStore(t, "Ana")

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Errorf("backup list failed: %v", err)
	}

	if got := len(listBackups(t, ctx)); got != 1 {
		t.Errorf("backups = %d, want 1", got)
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, store := setupJSONStore(t, "Ana")
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	name := listBackups(t, ctx)[0].Name

	saveName(t, store, "Changed")

	cmd := &BackupRestoreCmd{BackupFile: name, Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if got := loadName(t, store); got != "Ana" {
		t.Errorf("restored name = %q, want %q", got, "Ana")
	}
}

func TestBackupRestoreCmd_Cancelled(t *testing.T) {
	ctx, store := setupJSONStore(t, "Ana")
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	name := listBackups(t, ctx)[0].Name
	saveName(t, store, "Changed")

	ctx.In = strings.NewReader("n\n")
	cmd := &BackupRestoreCmd{BackupFile: name}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("cancelled restore returned error: %v", err)
	}

	if got := loadName(t, store); got != "Changed" {
		t.Errorf("name = %q, want %q after cancel", got, "Changed")
	}
}

func TestBackupCmd_UnsupportedStore(t *testing.T) {
	ctx := &cli.Context{Store: postgresLike{}}

	if err := (&BackupCreateCmd{}).Run(ctx); err == nil {
		t.Error("expected error for a store without a file path")
	}
}

// postgresLike reports the identifier the PostgreSQL store uses instead of a path.
type postgresLike struct {
	storage.Provider
}

func (postgresLike) GetConfigPath() string { return "postgresql" }
