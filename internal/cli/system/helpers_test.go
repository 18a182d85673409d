package system

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/storage/sqlite"
)

func setupTestStore(t *testing.T, initialize bool) (*cli.Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := sqlite.NewStore(dbPath)
	if initialize {
		if err := store.Init(); err != nil {
			t.Fatalf("failed to initialize store: %v", err)
		}
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	ctx := &cli.Context{
		Store: store,
		Now: func() time.Time {
			return time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
		},
	}
	return ctx, dbPath
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(text string) error {
	n.messages = append(n.messages, text)
	return nil
}
