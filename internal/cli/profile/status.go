package profile

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/constants"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	switch engine.Screen() {
	case constants.ScreenWelcome:
		fmt.Println("No profile yet. Run 'bodysoul register' to join the challenge.")
		return nil
	case constants.ScreenBaseline:
		fmt.Printf("Hi %s! Run 'bodysoul baseline' to start the challenge.\n", engine.Profile().Name)
		return nil
	}

	// Reported before the storage error so the user still sees them.
	_, missErr := engine.CheckMissedDays()
	for _, n := range engine.Notices() {
		fmt.Println(n)
	}

	p := engine.Profile()
	day := engine.DayStatus()

	fmt.Printf("%s\n", p.Name)
	fmt.Printf("  %s\n", engine.Summary())
	fmt.Printf("  Progress:     %s %.0f%%\n", progressBar(engine.Progress(), 20), engine.Progress())
	fmt.Printf("  Started:      %s\n", p.StartDate)
	fmt.Printf("  Week %d days:  %d of %d completed\n", engine.Week(), engine.CompletedDaysInWeek(engine.Week()), constants.DaysPerWeek)
	fmt.Printf("  Today:        %d/%d tasks", day.CompletedTasks, len(constants.TaskKeys))
	if day.DayCompleted {
		fmt.Print(" (day complete)")
	}
	fmt.Println()

	if len(p.Badges) > 0 {
		fmt.Println("\nBadges:")
		for _, b := range p.Badges {
			fmt.Printf("  🏅 %s\n", b)
		}
	}
	return missErr
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
