package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/utils"
	"github.com/julianstephens/bodysoul/internal/validation"
)

type RegisterFormModel struct {
	Name   string
	Age    string
	Gender string
	Weight string
	Height string
}

func (f *RegisterFormModel) Input() (validation.RegistrationInput, error) {
	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		return validation.RegistrationInput{}, fmt.Errorf("age must be a whole number")
	}
	weight, err := parseNumber(f.Weight)
	if err != nil {
		return validation.RegistrationInput{}, fmt.Errorf("weight: %w", err)
	}
	height, err := parseNumber(f.Height)
	if err != nil {
		return validation.RegistrationInput{}, fmt.Errorf("height: %w", err)
	}
	return validation.RegistrationInput{
		Name:          strings.TrimSpace(f.Name),
		Age:           age,
		Gender:        f.Gender,
		InitialWeight: weight,
		Height:        height,
	}, nil
}

type BaselineFormModel struct {
	Weight   string
	Deficit  string
	Cardio   string
	Strength string
	Track    string
	Bedtime  string
	Waketime string
}

func (f *BaselineFormModel) Input() (validation.BaselineInput, error) {
	in := validation.BaselineInput{
		BaselineCardio:      strings.TrimSpace(f.Cardio),
		BaselineStrength:    strings.TrimSpace(f.Strength),
		ExerciseTrack:       f.Track,
		SleepTargetBedtime:  strings.TrimSpace(f.Bedtime),
		SleepTargetWaketime: strings.TrimSpace(f.Waketime),
	}
	if strings.TrimSpace(f.Weight) != "" {
		w, err := parseNumber(f.Weight)
		if err != nil {
			return in, fmt.Errorf("current weight: %w", err)
		}
		in.CurrentWeight = w
	}
	if strings.TrimSpace(f.Deficit) != "" {
		d, err := strconv.Atoi(strings.TrimSpace(f.Deficit))
		if err != nil {
			return in, fmt.Errorf("caloric deficit must be a whole number")
		}
		in.CaloricDeficitTarget = d
	}
	return in, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("must be a number")
	}
	return v, nil
}

func requireNumber(s string) error {
	_, err := parseNumber(s)
	return err
}

func optionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return requireNumber(s)
}

func optionalClock(s string) error {
	if s = strings.TrimSpace(s); s != "" && !utils.ValidateTimeFormat(s) {
		return errors.New("use HH:MM")
	}
	return nil
}

func optionalRating(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 10 {
		return errors.New("rate from 1 to 10")
	}
	return nil
}

func newRegisterForm(data *RegisterFormModel, dark bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&data.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Age").
				Value(&data.Age).
				Validate(requireNumber),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Female", "female"),
					huh.NewOption("Male", "male"),
					huh.NewOption("Other", "other"),
				).
				Value(&data.Gender),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&data.Weight).
				Validate(requireNumber),
			huh.NewInput().
				Title("Height (cm)").
				Value(&data.Height).
				Validate(requireNumber),
		).Title("Welcome to the Body and Soul Challenge"),
	).WithTheme(formTheme(dark))
}

func newBaselineForm(data *BaselineFormModel, dark bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current weight (kg)").
				Description("Leave empty to keep your registration weight.").
				Value(&data.Weight).
				Validate(optionalNumber),
			huh.NewInput().
				Title("Daily caloric deficit").
				Placeholder(strconv.Itoa(constants.DefaultCaloricDeficit)).
				Value(&data.Deficit).
				Validate(optionalNumber),
			huh.NewText().
				Title("How much cardio can you do today?").
				Value(&data.Cardio),
			huh.NewText().
				Title("How much strength training can you do today?").
				Value(&data.Strength),
		).Title("Baseline assessment"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Exercise track").
				Options(
					huh.NewOption("Beginner", string(constants.TrackBeginner)),
					huh.NewOption("Intermediate", string(constants.TrackIntermediate)),
					huh.NewOption("Advanced", string(constants.TrackAdvanced)),
				).
				Value(&data.Track),
			huh.NewInput().
				Title("Target bedtime").
				Placeholder(constants.DefaultSleepTargetBedtime).
				Value(&data.Bedtime).
				Validate(optionalClock),
			huh.NewInput().
				Title("Target wake time").
				Placeholder(constants.DefaultSleepTargetWaketime).
				Value(&data.Waketime).
				Validate(optionalClock),
		).Title("Targets"),
	).WithTheme(formTheme(dark))
}

func newConfirmForm(title, description string, confirmed *bool, dark bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	).WithTheme(formTheme(dark))
}

// TaskFormModel holds the editable fields of one task. Only fields that differ from the
// stored log become events.
type TaskFormModel struct {
	Key constants.TaskKey

	order   []string
	texts   map[string]*string
	flags   map[string]*bool
	initial map[string]string

	// program fields are the make-me-quit program values not yet chosen
	program []string

	Gratitude        string
	gratitudeInitial string
	gratitudeOpen    bool
}

var fieldLabels = map[string]string{
	challenge.FieldBedtime:               "Bedtime (HH:MM)",
	challenge.FieldWaketime:              "Wake time (HH:MM)",
	challenge.FieldMealtimes:             "Mealtimes",
	challenge.FieldWater:                 "Water",
	challenge.FieldFood:                  "Food",
	challenge.FieldNonWaterDrinks:        "Other drinks",
	challenge.FieldJunkFoodStopped:       "Stopped junk food?",
	challenge.FieldFruitSnacks:           "Snacked on fruit?",
	challenge.FieldMealTimesAdhered:      "Kept to meal times?",
	challenge.FieldCaloriesTracked:       "Calories eaten",
	challenge.FieldMindfulness:           "Mindfulness session done?",
	challenge.FieldBreathing:             "Breathing exercise done?",
	challenge.FieldEnjoyable:             "Enjoyable activity done?",
	challenge.FieldMoodBefore:            "Mood before (1-10)",
	challenge.FieldStressBefore:          "Stress before (1-10)",
	challenge.FieldMoodAfter:             "Mood after (1-10)",
	challenge.FieldStressAfter:           "Stress after (1-10)",
	challenge.FieldInstancesLogged:       "Times it happened today",
	challenge.FieldContextLogged:         "When and where",
	challenge.FieldTriggerAvoided:        "Avoided your trigger?",
	challenge.FieldSubstitutionPracticed: "Practiced your substitution?",
	challenge.FieldBehavior:              "Behavior to quit",
	challenge.FieldTrigger:               "Its trigger",
	challenge.FieldSubstitution:          "What you will do instead",
}

// NewTaskFormModel loads the current values of a task for the given week.
func NewTaskFormModel(key constants.TaskKey, log *models.DailyLog, p *models.UserProfile, week int) *TaskFormModel {
	f := &TaskFormModel{
		Key:     key,
		texts:   map[string]*string{},
		flags:   map[string]*bool{},
		initial: map[string]string{},
	}

	switch key {
	case constants.TaskSleep:
		f.text(challenge.FieldBedtime, log.Sleep.Bedtime)
		f.text(challenge.FieldWaketime, log.Sleep.Waketime)

	case constants.TaskWeightControl:
		wc := log.WeightControl
		f.text(challenge.FieldMealtimes, wc.Mealtimes)
		f.text(challenge.FieldWater, wc.Water)
		f.text(challenge.FieldFood, wc.Food)
		f.text(challenge.FieldNonWaterDrinks, wc.NonWaterDrinks)
		if week >= 2 {
			f.flag(challenge.FieldJunkFoodStopped, wc.JunkFoodStopped)
			f.flag(challenge.FieldFruitSnacks, wc.FruitSnacks)
			f.flag(challenge.FieldMealTimesAdhered, wc.MealTimesAdhered)
		}
		if week >= 3 {
			f.text(challenge.FieldCaloriesTracked, intString(wc.CaloriesTracked))
		}

	case constants.TaskExercise:
		f.flag(string(constants.TaskExercise), log.ExerciseCompleted)

	case constants.TaskPeaceOfMind:
		pom := log.PeaceOfMind
		f.flag(challenge.FieldMindfulness, pom.MindfulnessCompleted)
		f.flag(challenge.FieldBreathing, pom.BreathingCompleted)
		f.flag(challenge.FieldEnjoyable, pom.EnjoyableActivityCompleted)
		f.text(challenge.FieldMoodBefore, intString(pom.MoodBefore))
		f.text(challenge.FieldStressBefore, intString(pom.StressBefore))
		f.text(challenge.FieldMoodAfter, intString(pom.MoodAfter))
		f.text(challenge.FieldStressAfter, intString(pom.StressAfter))
		if week >= constants.GratitudeFromWeek {
			f.gratitudeOpen = true
			f.gratitudeInitial = p.PeaceOfMind.GratitudeLog[fmt.Sprintf(constants.GratitudeKeyFormat, week)]
			f.Gratitude = f.gratitudeInitial
		}

	case constants.TaskMakeMeQuit:
		prog := p.MakeMeQuit
		switch {
		case prog.Behavior == nil:
			f.programField(challenge.FieldBehavior)
		case prog.Trigger == nil && week >= 2:
			f.programField(challenge.FieldTrigger)
		case prog.Trigger != nil && prog.Substitution == nil && week >= 4:
			f.programField(challenge.FieldSubstitution)
		}
		mmq := log.MakeMeQuit
		if week <= 2 {
			f.text(challenge.FieldInstancesLogged, intString(mmq.InstancesLogged))
		}
		if week <= 1 {
			ctxText := ""
			if mmq.ContextLogged != nil {
				ctxText = *mmq.ContextLogged
			}
			f.text(challenge.FieldContextLogged, ctxText)
		}
		if week >= 3 {
			f.flag(challenge.FieldTriggerAvoided, mmq.TriggerAvoided)
		}
		if week >= 4 {
			f.flag(challenge.FieldSubstitutionPracticed, mmq.SubstitutionPracticed)
		}
	}

	return f
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func (f *TaskFormModel) text(field, value string) {
	v := value
	f.order = append(f.order, field)
	f.texts[field] = &v
	f.initial[field] = value
}

func (f *TaskFormModel) flag(field string, value bool) {
	v := value
	f.order = append(f.order, field)
	f.flags[field] = &v
	f.initial[field] = strconv.FormatBool(value)
}

func (f *TaskFormModel) programField(field string) {
	v := ""
	f.program = append(f.program, field)
	f.texts[field] = &v
}

// Form builds the huh form bound to f.
func (f *TaskFormModel) Form(dark bool, description string) *huh.Form {
	var fields []huh.Field
	if description != "" {
		fields = append(fields, huh.NewNote().Title(constants.TaskTitles[f.Key]).Description(description))
	}
	for _, name := range f.program {
		fields = append(fields, huh.NewInput().
			Title(fieldLabels[name]).
			Description("Set once. Leave empty to decide later.").
			Value(f.texts[name]))
	}
	for _, name := range f.order {
		if b, ok := f.flags[name]; ok {
			title := fieldLabels[name]
			if name == string(constants.TaskExercise) {
				title = "Routine done?"
			}
			fields = append(fields, huh.NewConfirm().Title(title).Value(b))
			continue
		}
		input := huh.NewInput().Title(fieldLabels[name]).Value(f.texts[name])
		switch name {
		case challenge.FieldBedtime, challenge.FieldWaketime:
			input = input.Validate(optionalClock)
		case challenge.FieldMoodBefore, challenge.FieldStressBefore, challenge.FieldMoodAfter, challenge.FieldStressAfter:
			input = input.Validate(optionalRating)
		case challenge.FieldCaloriesTracked, challenge.FieldInstancesLogged:
			input = input.Validate(optionalNumber)
		}
		fields = append(fields, input)
	}
	if f.gratitudeOpen {
		fields = append(fields, huh.NewText().
			Title("This week I am grateful for").
			Value(&f.Gratitude))
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(formTheme(dark))
}

// Events returns the events for the changed fields. Program fields come first so that the
// log entries they unlock are accepted.
func (f *TaskFormModel) Events() []challenge.Event {
	var events []challenge.Event
	for _, name := range f.program {
		if v := strings.TrimSpace(*f.texts[name]); v != "" {
			events = append(events, challenge.SetQuitProgram{Field: name, Value: v})
		}
	}

	for _, name := range f.order {
		var value string
		if b, ok := f.flags[name]; ok {
			value = strconv.FormatBool(*b)
		} else {
			value = strings.TrimSpace(*f.texts[name])
		}
		if value == f.initial[name] {
			continue
		}
		events = append(events, taskEvent(f.Key, name, value))
	}

	if f.gratitudeOpen {
		if g := strings.TrimSpace(f.Gratitude); g != "" && g != f.gratitudeInitial {
			events = append(events, challenge.LogGratitude{Text: g})
		}
	}
	return events
}

func taskEvent(key constants.TaskKey, field, value string) challenge.Event {
	switch key {
	case constants.TaskSleep:
		return challenge.LogSleep{Field: field, Value: value}
	case constants.TaskWeightControl:
		return challenge.LogWeight{Field: field, Value: value}
	case constants.TaskExercise:
		return challenge.MarkExercise{Done: value == "true"}
	case constants.TaskPeaceOfMind:
		return challenge.LogPeaceOfMind{Field: field, Value: value}
	default:
		return challenge.LogQuit{Field: field, Value: value}
	}
}
