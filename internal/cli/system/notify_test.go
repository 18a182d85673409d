package system

import (
	"strings"
	"testing"

	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage"
)

func saveActiveProfile(t *testing.T, store storage.Provider) {
	t.Helper()
	profile := models.NewProfile("2024-03-04")
	profile.Name = "Ana"
	profile.Age = 34
	profile.Gender = "female"
	profile.IsRegistered = true
	profile.HasCompletedBaseline = true
	profile.StartDate = "2024-03-04"
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}
}

func TestNotifyCmd_SendsReminder(t *testing.T) {
	ctx, _ := setupTestStore(t, true)
	saveActiveProfile(t, ctx.Store)
	n := &recordingNotifier{}
	ctx.Notifier = n

	if err := (&NotifyCmd{}).Run(ctx); err != nil {
		t.Fatalf("NotifyCmd.Run() error = %v", err)
	}

	if len(n.messages) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(n.messages))
	}
	if !strings.Contains(n.messages[0], "0 of 5 tasks") {
		t.Errorf("reminder = %q, want task count", n.messages[0])
	}
}

func TestNotifyCmd_DryRun(t *testing.T) {
	ctx, _ := setupTestStore(t, true)
	saveActiveProfile(t, ctx.Store)
	n := &recordingNotifier{}
	ctx.Notifier = n

	if err := (&NotifyCmd{DryRun: true}).Run(ctx); err != nil {
		t.Fatalf("NotifyCmd.Run() error = %v", err)
	}
	if len(n.messages) != 0 {
		t.Errorf("dry run sent %d notifications, want 0", len(n.messages))
	}
}

func TestNotifyCmd_Skips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, store storage.Provider)
	}{
		{
			name:  "no profile",
			setup: func(t *testing.T, store storage.Provider) {},
		},
		{
			name: "notifications disabled",
			setup: func(t *testing.T, store storage.Provider) {
				saveActiveProfile(t, store)
				settings := models.DefaultSettings()
				settings.NotificationsEnabled = false
				if err := store.SaveSettings(settings); err != nil {
					t.Fatalf("failed to save settings: %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestStore(t, true)
			tt.setup(t, ctx.Store)
			n := &recordingNotifier{}
			ctx.Notifier = n

			if err := (&NotifyCmd{}).Run(ctx); err != nil {
				t.Fatalf("NotifyCmd.Run() error = %v", err)
			}
			if len(n.messages) != 0 {
				t.Errorf("sent %d notifications, want 0", len(n.messages))
			}
		})
	}
}
