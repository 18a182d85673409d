package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage/sqlite"
)

const testDate = "2024-03-04"

func setupActive(t *testing.T) *cli.Context {
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

	profile := models.NewProfile(testDate)
	profile.Name = "Ana"
	profile.Age = 34
	profile.Gender = "female"
	profile.Height = 168
	profile.IsRegistered = true
	profile.HasCompletedBaseline = true
	profile.StartDate = testDate
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	return &cli.Context{
		Store: store,
		Now: func() time.Time {
			return time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)
		},
	}
}

func ptr[T any](v T) *T { return &v }

func storedLog(t *testing.T, ctx *cli.Context) *models.DailyLog {
	t.Helper()
	p, err := ctx.Store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	log := p.DailyLogs[testDate]
	if log == nil {
		t.Fatalf("no log stored for %s", testDate)
	}
	return log
}

func completeWeekOne(t *testing.T, ctx *cli.Context) {
	t.Helper()
	run := func(name string, err error) {
		if err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
	}
	run("log sleep", (&LogSleepCmd{Bedtime: ptr("22:30"), Waketime: ptr("06:30")}).Run(ctx))
	run("log weight", (&LogWeightCmd{Mealtimes: ptr("8, 13, 19"), Water: ptr("2 l"), Food: ptr("oats, salad")}).Run(ctx))
	run("log exercise", (&LogExerciseCmd{}).Run(ctx))
	run("log mind", (&LogMindCmd{
		Mindfulness:  ptr(true),
		Breathing:    ptr(true),
		Enjoyable:    ptr(true),
		MoodBefore:   ptr(4),
		StressBefore: ptr(7),
		MoodAfter:    ptr(6),
		StressAfter:  ptr(5),
	}).Run(ctx))
	run("quit-program", (&QuitProgramCmd{Field: "behavior", Value: "late-night snacking"}).Run(ctx))
	run("log quit", (&LogQuitCmd{Instances: ptr(2), Context: ptr("watching TV")}).Run(ctx))
}

func TestLogSleepCmd(t *testing.T) {
	ctx := setupActive(t)

	cmd := &LogSleepCmd{Bedtime: ptr("23:00"), Waketime: ptr("07:00")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log sleep failed: %v", err)
	}

	log := storedLog(t, ctx)
	if !log.Status(constants.TaskSleep).Completed {
		t.Error("sleep task should be completed")
	}
	if log.Sleep.Duration == nil || *log.Sleep.Duration != "8.0 hours" {
		t.Errorf("Duration = %v, want 8.0 hours", log.Sleep.Duration)
	}
}

func TestLogCmds_NothingToLog(t *testing.T) {
	ctx := setupActive(t)

	cmds := map[string]interface{ Run(*cli.Context) error }{
		"sleep":  &LogSleepCmd{},
		"weight": &LogWeightCmd{},
		"mind":   &LogMindCmd{},
		"quit":   &LogQuitCmd{},
	}
	for name, cmd := range cmds {
		if err := cmd.Run(ctx); !errors.Is(err, errNothingToLog) {
			t.Errorf("log %s error = %v, want %v", name, err, errNothingToLog)
		}
	}
}

func TestLogWeightCmd_LockedInWeekOne(t *testing.T) {
	ctx := setupActive(t)

	cmd := &LogWeightCmd{JunkFoodStopped: ptr(true)}
	if err := cmd.Run(ctx); !errors.Is(err, challenge.ErrLocked) {
		t.Errorf("log weight error = %v, want %v", err, challenge.ErrLocked)
	}
}

func TestLogGratitudeCmd_LockedInWeekOne(t *testing.T) {
	ctx := setupActive(t)

	cmd := &LogGratitudeCmd{Text: "my family"}
	if err := cmd.Run(ctx); !errors.Is(err, challenge.ErrLocked) {
		t.Errorf("log gratitude error = %v, want %v", err, challenge.ErrLocked)
	}
}

func TestCompleteDayCmd(t *testing.T) {
	ctx := setupActive(t)

	if err := (&CompleteDayCmd{}).Run(ctx); !errors.Is(err, challenge.ErrDayNotReady) {
		t.Fatalf("complete-day before tasks error = %v, want %v", err, challenge.ErrDayNotReady)
	}

	completeWeekOne(t, ctx)
	if err := (&CompleteDayCmd{}).Run(ctx); err != nil {
		t.Fatalf("complete-day failed: %v", err)
	}

	log := storedLog(t, ctx)
	if !log.DayCompleted {
		t.Error("DayCompleted = false, want true")
	}
	if err := (&CompleteDayCmd{}).Run(ctx); !errors.Is(err, challenge.ErrDayAlreadyComplete) {
		t.Errorf("second complete-day error = %v, want %v", err, challenge.ErrDayAlreadyComplete)
	}
}

func TestHideAndShowCmd(t *testing.T) {
	ctx := setupActive(t)

	if err := (&HideCmd{Task: "exercise"}).Run(ctx); !errors.Is(err, challenge.ErrTaskNotComplete) {
		t.Fatalf("hide incomplete error = %v, want %v", err, challenge.ErrTaskNotComplete)
	}

	if err := (&LogExerciseCmd{}).Run(ctx); err != nil {
		t.Fatalf("log exercise failed: %v", err)
	}
	if err := (&HideCmd{Task: "exercise"}).Run(ctx); err != nil {
		t.Fatalf("hide failed: %v", err)
	}
	if got := storedLog(t, ctx).Status(constants.TaskExercise); !got.SwipedHidden || !got.Completed {
		t.Errorf("status after hide = %+v, want hidden and completed", got)
	}

	if err := (&ShowCmd{Task: "exercise"}).Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if got := storedLog(t, ctx).Status(constants.TaskExercise); got.SwipedHidden {
		t.Errorf("status after show = %+v, want visible", got)
	}
}

func TestReadOnlyCmds(t *testing.T) {
	ctx := setupActive(t)
	completeWeekOne(t, ctx)

	cmds := map[string]interface{ Run(*cli.Context) error }{
		"today":          &TodayCmd{},
		"today --hidden": &TodayCmd{Hidden: true},
		"calendar":       &CalendarCmd{},
		"calendar prev":  &CalendarCmd{Offset: -1},
		"points":         &PointsCmd{Limit: 20},
		"points all":     &PointsCmd{},
	}
	for name, cmd := range cmds {
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("%s failed: %v", name, err)
		}
	}
}
