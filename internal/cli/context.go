package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/bodysoul/internal/backup"
	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/coach"
	"github.com/julianstephens/bodysoul/internal/logger"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage"
	"github.com/julianstephens/bodysoul/internal/utils"
)

// Notifier delivers desktop notifications.
type Notifier interface {
	Notify(text string) error
}

type Context struct {
	Store    storage.Provider
	Coach    *coach.Client
	Notifier Notifier

	// Now overrides the clock derived from the timezone setting.
	Now func() time.Time
	// In replaces stdin for confirmation prompts.
	In io.Reader

	engine *challenge.Engine
}

// Settings returns the stored settings, or the defaults when none are stored.
func (c *Context) Settings() models.Settings {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Debug("Using default settings", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// Clock returns the clock for "today", honoring the timezone setting.
func (c *Context) Clock() func() time.Time {
	if c.Now != nil {
		return c.Now
	}
	return utils.ClockFor(c.Settings().Timezone)
}

// Engine loads the profile once and returns the engine over it. A missing profile starts a
// fresh installation.
func (c *Context) Engine() (*challenge.Engine, error) {
	if c.engine != nil {
		return c.engine, nil
	}

	profile, err := c.Store.LoadProfile()
	if err != nil && !errors.Is(err, storage.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	c.engine = challenge.New(c.Store, profile, challenge.WithClock(c.Clock()))
	return c.engine, nil
}

// Dispatch applies the events in order, stopping at the first error. The merged outcome is
// reported even when an event fails.
func (c *Context) Dispatch(events ...challenge.Event) error {
	engine, err := c.Engine()
	if err != nil {
		return err
	}

	var merged challenge.Outcome
	for _, ev := range events {
		out, err := engine.Dispatch(ev)
		merged.Awards = append(merged.Awards, out.Awards...)
		merged.Badges = append(merged.Badges, out.Badges...)
		merged.Notices = append(merged.Notices, out.Notices...)
		merged.Day = out.Day
		if err != nil {
			c.Report(merged)
			return err
		}
	}

	c.Report(merged)
	return nil
}

// Report prints what an outcome changed and notifies about it.
func (c *Context) Report(out challenge.Outcome) {
	for _, a := range out.Awards {
		fmt.Printf("  +%g  %s\n", a.Amount, a.Reason)
	}
	for _, n := range out.Notices {
		fmt.Printf("%s\n", n)
	}
	if out.Day.Date != "" {
		fmt.Printf("Tasks completed today: %d/5\n", out.Day.CompletedTasks)
	}
	c.NotifyOutcome(out)
}

// NotifyOutcome sends desktop notifications for a completed day and new badges.
func (c *Context) NotifyOutcome(out challenge.Outcome) {
	if c.Notifier == nil || !c.Settings().NotificationsEnabled {
		return
	}
	var messages []string
	for _, a := range out.Awards {
		if a.Reason == challenge.ReasonDayCompleted {
			messages = append(messages, fmt.Sprintf("Day complete! +%g points", a.Amount))
		}
	}
	for _, b := range out.Badges {
		messages = append(messages, "Badge earned: "+b)
	}
	for _, msg := range messages {
		if err := c.Notifier.Notify(msg); err != nil {
			logger.Warn("Notification not delivered", "error", err)
		}
	}
}

// PerformAutomaticBackup creates a backup of file-based stores and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	mgr, err := backup.NewManager(c.Store.GetConfigPath())
	if err != nil {
		logger.Debug("Skipping automatic backup", "error", err)
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
