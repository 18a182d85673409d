package system

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/constants"
)

// NotifyCmd sends a reminder when today is not complete yet. It is meant to be run from a
// scheduler such as cron in the evening.
type NotifyCmd struct {
	DryRun bool `help:"Print the reminder to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if !ctx.Settings().NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	if engine.Screen() != constants.ScreenDashboard {
		if c.DryRun {
			fmt.Println("The challenge has not started yet.")
		}
		return nil
	}

	day := engine.DayStatus()
	if day.DayCompleted {
		if c.DryRun {
			fmt.Println("Today is already complete.")
		}
		return nil
	}

	msg := fmt.Sprintf("Week %d: %d of %d tasks done today. Keep going!", engine.Week(), day.CompletedTasks, len(constants.TaskKeys))
	if day.CanComplete {
		msg = fmt.Sprintf("All tasks are done. Complete the day for %.0f points!", constants.PointsDayComplete)
	}

	if c.DryRun || ctx.Notifier == nil {
		fmt.Printf("[DRY RUN] Notification: %s\n", msg)
		return nil
	}
	if err := ctx.Notifier.Notify(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
