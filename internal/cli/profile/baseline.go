package profile

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/validation"
)

type BaselineCmd struct {
	Weight   float64 `help:"Current weight in kg, if it changed since registration."`
	Deficit  int     `help:"Daily caloric deficit target in kcal (default 500)."`
	Cardio   string  `required:"" help:"What cardio can you do today? (e.g., '15 min walk')"`
	Strength string  `required:"" help:"What strength work can you do today? (e.g., '5 push-ups')"`
	Track    string  `default:"beginner" enum:"beginner,intermediate,advanced" help:"Exercise track (beginner, intermediate, advanced)."`
	Bedtime  string  `help:"Target bedtime (HH:MM, default 22:30)."`
	Waketime string  `help:"Target wake time (HH:MM, default 06:30)."`
}

func (c *BaselineCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	in := validation.BaselineInput{
		CurrentWeight:        c.Weight,
		CaloricDeficitTarget: c.Deficit,
		BaselineCardio:       c.Cardio,
		BaselineStrength:     c.Strength,
		ExerciseTrack:        c.Track,
		SleepTargetBedtime:   c.Bedtime,
		SleepTargetWaketime:  c.Waketime,
	}
	if err := engine.CompleteBaseline(in); err != nil {
		return err
	}

	p := engine.Profile()
	bedtime, waketime := p.SleepTargets()
	routine := engine.ExerciseRoutine()

	fmt.Printf("Challenge started on %s (week %d of 10).\n", p.StartDate, engine.Week())
	fmt.Printf("  Daily calorie goal: %d kcal\n", engine.DailyCalorieGoal())
	fmt.Printf("  Sleep target:       %s - %s\n", bedtime, waketime)
	fmt.Printf("  Cardio:             %s\n", routine.Cardio)
	fmt.Printf("  Strength:           %s\n", routine.Strength)
	return nil
}
