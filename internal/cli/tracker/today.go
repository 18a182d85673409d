package tracker

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
)

type TodayCmd struct {
	Hidden bool `help:"Also show task cards that were hidden."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	if engine.Screen() != constants.ScreenDashboard {
		return fmt.Errorf("the challenge has not started: %w", activeErr(engine))
	}

	week := engine.Week()
	log := engine.Profile().DailyLogs[engine.Today()]
	if log == nil {
		log = models.NewDailyLog()
	}
	day := engine.DayStatusFor(engine.Today())

	fmt.Printf("%s · Week %d of %d\n\n", engine.Today(), week, constants.TotalWeeks)

	for _, key := range constants.TaskKeys {
		status := log.Status(key)
		if status.SwipedHidden && !c.Hidden {
			continue
		}
		mark := "○"
		if status.Completed {
			mark = "✓"
		}
		title := constants.TaskTitles[key]
		if status.SwipedHidden {
			title += " (hidden)"
		}
		fmt.Printf("%s %s\n", mark, title)
		if !status.Completed {
			fmt.Printf("    %s\n", challenge.TaskHint(key, week))
		}
	}

	routine := engine.ExerciseRoutine()
	fmt.Printf("\nExercise (phase %d):\n", routine.Phase)
	fmt.Printf("  Cardio:   %s\n", routine.Cardio)
	fmt.Printf("  Strength: %s\n", routine.Strength)
	if week >= 3 {
		fmt.Printf("\nDaily calorie goal: %d kcal\n", engine.DailyCalorieGoal())
	}

	fmt.Printf("\nTasks completed today: %d/%d\n", day.CompletedTasks, len(constants.TaskKeys))
	switch {
	case day.DayCompleted:
		fmt.Println("Day complete. See you tomorrow!")
	case day.CanComplete:
		fmt.Println("All tasks done! Run 'bodysoul complete-day' to claim your points.")
	}
	return nil
}

func activeErr(engine *challenge.Engine) error {
	if engine.Screen() == constants.ScreenWelcome {
		return challenge.ErrNotRegistered
	}
	return challenge.ErrBaselineIncomplete
}
