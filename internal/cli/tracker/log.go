package tracker

import (
	"errors"
	"strconv"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/cli"
)

var errNothingToLog = errors.New("nothing to log, pass at least one flag (see --help)")

type LogCmd struct {
	Sleep     LogSleepCmd     `cmd:"" help:"Log last night's bedtime and wake time."`
	Weight    LogWeightCmd    `cmd:"" help:"Log today's weight control entries."`
	Exercise  LogExerciseCmd  `cmd:"" help:"Mark today's exercise routine as done."`
	Mind      LogMindCmd      `cmd:"" help:"Log today's peace of mind practices and ratings."`
	Quit      LogQuitCmd      `cmd:"" help:"Log today's make-me-quit entries."`
	Gratitude LogGratitudeCmd `cmd:"" help:"Record this week's gratitude entry (from week 2)."`
}

// fields collects field/value events from the flags that were set.
type fields struct {
	mk     func(field, value string) challenge.Event
	events []challenge.Event
}

func (f *fields) text(field string, v *string) {
	if v != nil {
		f.events = append(f.events, f.mk(field, *v))
	}
}

func (f *fields) flag(field string, v *bool) {
	if v != nil {
		f.events = append(f.events, f.mk(field, strconv.FormatBool(*v)))
	}
}

func (f *fields) number(field string, v *int) {
	if v != nil {
		f.events = append(f.events, f.mk(field, strconv.Itoa(*v)))
	}
}

func (f *fields) dispatch(ctx *cli.Context) error {
	if len(f.events) == 0 {
		return errNothingToLog
	}
	return ctx.Dispatch(f.events...)
}

type LogSleepCmd struct {
	Bedtime  *string `help:"Bedtime (HH:MM)."`
	Waketime *string `help:"Wake time (HH:MM)."`
}

func (c *LogSleepCmd) Run(ctx *cli.Context) error {
	f := &fields{mk: func(field, value string) challenge.Event {
		return challenge.LogSleep{Field: field, Value: value}
	}}
	f.text(challenge.FieldBedtime, c.Bedtime)
	f.text(challenge.FieldWaketime, c.Waketime)
	return f.dispatch(ctx)
}

type LogWeightCmd struct {
	Mealtimes        *string `help:"When you ate today."`
	Water            *string `help:"How much water you drank."`
	Food             *string `help:"What you ate."`
	Drinks           *string `help:"Non-water drinks."`
	JunkFoodStopped  *bool   `name:"junk-food-stopped" help:"No junk food today (from week 2)."`
	FruitSnacks      *bool   `name:"fruit-snacks" help:"Snacked on fruit instead (from week 2)."`
	MealTimesAdhered *bool   `name:"meal-times-adhered" help:"Kept to your meal times (from week 2)."`
	Calories         *int    `help:"Calories eaten today (from week 3)."`
}

func (c *LogWeightCmd) Run(ctx *cli.Context) error {
	f := &fields{mk: func(field, value string) challenge.Event {
		return challenge.LogWeight{Field: field, Value: value}
	}}
	f.text(challenge.FieldMealtimes, c.Mealtimes)
	f.text(challenge.FieldWater, c.Water)
	f.text(challenge.FieldFood, c.Food)
	f.text(challenge.FieldNonWaterDrinks, c.Drinks)
	f.flag(challenge.FieldJunkFoodStopped, c.JunkFoodStopped)
	f.flag(challenge.FieldFruitSnacks, c.FruitSnacks)
	f.flag(challenge.FieldMealTimesAdhered, c.MealTimesAdhered)
	f.number(challenge.FieldCaloriesTracked, c.Calories)
	return f.dispatch(ctx)
}

type LogExerciseCmd struct {
	Undo bool `help:"Mark today's exercise as not done."`
}

func (c *LogExerciseCmd) Run(ctx *cli.Context) error {
	return ctx.Dispatch(challenge.MarkExercise{Done: !c.Undo})
}

type LogMindCmd struct {
	Mindfulness  *bool `help:"Did the 60-second mindfulness session."`
	Breathing    *bool `help:"Did a box breathing exercise."`
	Enjoyable    *bool `help:"Did something enjoyable."`
	MoodBefore   *int  `name:"mood-before" help:"Mood before practice (1-10)."`
	StressBefore *int  `name:"stress-before" help:"Stress before practice (1-10)."`
	MoodAfter    *int  `name:"mood-after" help:"Mood after practice (1-10)."`
	StressAfter  *int  `name:"stress-after" help:"Stress after practice (1-10)."`
}

func (c *LogMindCmd) Run(ctx *cli.Context) error {
	f := &fields{mk: func(field, value string) challenge.Event {
		return challenge.LogPeaceOfMind{Field: field, Value: value}
	}}
	f.flag(challenge.FieldMindfulness, c.Mindfulness)
	f.flag(challenge.FieldBreathing, c.Breathing)
	f.flag(challenge.FieldEnjoyable, c.Enjoyable)
	f.number(challenge.FieldMoodBefore, c.MoodBefore)
	f.number(challenge.FieldStressBefore, c.StressBefore)
	f.number(challenge.FieldMoodAfter, c.MoodAfter)
	f.number(challenge.FieldStressAfter, c.StressAfter)
	return f.dispatch(ctx)
}

type LogQuitCmd struct {
	Instances             *int    `help:"How many times the behavior happened today."`
	Context               *string `help:"Where, when and with whom it happened."`
	TriggerAvoided        *bool   `name:"trigger-avoided" help:"Avoided your trigger today (from week 3)."`
	SubstitutionPracticed *bool   `name:"substitution-practiced" help:"Practiced your substitution today (from week 4)."`
}

func (c *LogQuitCmd) Run(ctx *cli.Context) error {
	f := &fields{mk: func(field, value string) challenge.Event {
		return challenge.LogQuit{Field: field, Value: value}
	}}
	f.number(challenge.FieldInstancesLogged, c.Instances)
	f.text(challenge.FieldContextLogged, c.Context)
	f.flag(challenge.FieldTriggerAvoided, c.TriggerAvoided)
	f.flag(challenge.FieldSubstitutionPracticed, c.SubstitutionPracticed)
	return f.dispatch(ctx)
}

type LogGratitudeCmd struct {
	Text string `arg:"" help:"What you are grateful for this week."`
}

func (c *LogGratitudeCmd) Run(ctx *cli.Context) error {
	return ctx.Dispatch(challenge.LogGratitude{Text: c.Text})
}
