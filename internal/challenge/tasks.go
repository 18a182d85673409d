package challenge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/utils"
)

func parseFlag(field, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, field)
	}
	return b, nil
}

// parseOptionalInt returns nil for an empty value, clearing the field.
func parseOptionalInt(field, value string, lo, hi int) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < lo || n > hi {
		return nil, fmt.Errorf("%w: %s must be a number between %d and %d", ErrInvalidValue, field, lo, hi)
	}
	return &n, nil
}

// LogSleep records a bedtime or wake time (HH:MM, empty to clear).
func (e *Engine) LogSleep(field, value string) (DayStatus, error) {
	value = strings.TrimSpace(value)
	if value != "" && !utils.ValidateTimeFormat(value) {
		return e.DayStatus(), fmt.Errorf("%w: %s must be HH:MM", ErrInvalidValue, field)
	}

	log := e.TodayLog()
	switch field {
	case FieldBedtime:
		log.Sleep.Bedtime = value
	case FieldWaketime:
		log.Sleep.Waketime = value
	default:
		return e.DayStatus(), fmt.Errorf("%w: sleep %q", ErrUnknownField, field)
	}

	e.recomputeSleep()
	return e.refresh(constants.TaskSleep)
}

func (e *Engine) recomputeSleep() {
	s := &e.TodayLog().Sleep
	if !SleepFilled(*s) {
		s.Duration = nil
		s.TargetMet = nil
		return
	}

	if d, err := SleepDuration(s.Bedtime, s.Waketime); err == nil {
		s.Duration = &d
	}

	if e.Week() < constants.SleepTargetFromWeek {
		return
	}
	bed, wake := e.profile.SleepTargets()
	met := SleepTargetMet(s.Bedtime, s.Waketime, bed, wake)
	s.TargetMet = &met
	if met && e.award(e.dailyAwardKey(constants.TaskSleep, "targetMet"), constants.PointsSleepTarget, "Sleep: target met") {
		e.notice("Sleep goal met!")
	}
}

// LogWeight records one weight control field. Flags unlock in week 2 and the calorie
// count in week 3.
func (e *Engine) LogWeight(field, value string) (DayStatus, error) {
	log := e.TodayLog()
	wc := &log.WeightControl
	week := e.Week()
	key := func() string { return e.dailyAwardKey(constants.TaskWeightControl, field) }

	switch field {
	case FieldMealtimes, FieldWater, FieldFood, FieldNonWaterDrinks:
		text := strings.TrimSpace(value)
		switch field {
		case FieldMealtimes:
			wc.Mealtimes = text
		case FieldWater:
			wc.Water = text
		case FieldFood:
			wc.Food = text
		case FieldNonWaterDrinks:
			wc.NonWaterDrinks = text
		}
		if text != "" {
			e.award(key(), constants.PointsWeightText, "Weight control: "+field)
		}

	case FieldJunkFoodStopped, FieldFruitSnacks, FieldMealTimesAdhered:
		if week < 2 {
			return e.DayStatus(), fmt.Errorf("%w: %s starts in week 2", ErrLocked, field)
		}
		flag, err := parseFlag(field, value)
		if err != nil {
			return e.DayStatus(), err
		}
		switch field {
		case FieldJunkFoodStopped:
			wc.JunkFoodStopped = flag
		case FieldFruitSnacks:
			wc.FruitSnacks = flag
		case FieldMealTimesAdhered:
			wc.MealTimesAdhered = flag
		}
		if flag {
			e.award(key(), constants.PointsWeightFlag, "Weight control: "+field)
		}

	case FieldCaloriesTracked:
		if week < 3 {
			return e.DayStatus(), fmt.Errorf("%w: %s starts in week 3", ErrLocked, field)
		}
		calories, err := parseOptionalInt(field, value, 0, 20000)
		if err != nil {
			return e.DayStatus(), err
		}
		wc.CaloriesTracked = calories
		if calories != nil {
			e.award(key(), constants.PointsWeightCalories, "Weight control: calories tracked")
		}

	default:
		return e.DayStatus(), fmt.Errorf("%w: weight control %q", ErrUnknownField, field)
	}

	return e.refresh(constants.TaskWeightControl)
}

// MarkExercise records whether today's routine was done.
func (e *Engine) MarkExercise(done bool) (DayStatus, error) {
	log := e.TodayLog()
	log.ExerciseCompleted = done
	if done {
		e.award(e.dailyAwardKey(constants.TaskExercise), constants.PointsExercise, "Exercise completed")
	}
	return e.refresh(constants.TaskExercise)
}

// LogPeaceOfMind records a practice flag or a 1-10 mood or stress rating (empty to clear).
func (e *Engine) LogPeaceOfMind(field, value string) (DayStatus, error) {
	pom := &e.TodayLog().PeaceOfMind
	key := e.dailyAwardKey(constants.TaskPeaceOfMind, field)

	switch field {
	case FieldMindfulness, FieldBreathing, FieldEnjoyable:
		flag, err := parseFlag(field, value)
		if err != nil {
			return e.DayStatus(), err
		}
		var points float64
		switch field {
		case FieldMindfulness:
			pom.MindfulnessCompleted, points = flag, constants.PointsMindfulness
		case FieldBreathing:
			pom.BreathingCompleted, points = flag, constants.PointsBreathing
		case FieldEnjoyable:
			pom.EnjoyableActivityCompleted, points = flag, constants.PointsEnjoyable
		}
		if flag {
			e.award(key, points, "Peace of mind: "+field)
		}

	case FieldMoodBefore, FieldStressBefore, FieldMoodAfter, FieldStressAfter:
		rating, err := parseOptionalInt(field, value, 1, 10)
		if err != nil {
			return e.DayStatus(), err
		}
		switch field {
		case FieldMoodBefore:
			pom.MoodBefore = rating
		case FieldStressBefore:
			pom.StressBefore = rating
		case FieldMoodAfter:
			pom.MoodAfter = rating
		case FieldStressAfter:
			pom.StressAfter = rating
		}
		if rating != nil {
			e.award(key, constants.PointsMoodStress, "Peace of mind: "+field+" logged")
		}

	default:
		return e.DayStatus(), fmt.Errorf("%w: peace of mind %q", ErrUnknownField, field)
	}

	return e.refresh(constants.TaskPeaceOfMind)
}

// LogQuit records one of today's make-me-quit entries.
func (e *Engine) LogQuit(field, value string) (DayStatus, error) {
	mmq := &e.TodayLog().MakeMeQuit
	key := e.dailyAwardKey(constants.TaskMakeMeQuit, field)

	switch field {
	case FieldInstancesLogged:
		n, err := parseOptionalInt(field, value, 0, 1000)
		if err != nil {
			return e.DayStatus(), err
		}
		mmq.InstancesLogged = n
		if n != nil {
			e.award(key, constants.PointsQuitLogged, "Make me quit: logged")
		}

	case FieldContextLogged:
		text := strings.TrimSpace(value)
		mmq.ContextLogged = &text
		if text != "" {
			e.award(key, constants.PointsQuitLogged, "Make me quit: logged")
		}

	case FieldTriggerAvoided:
		flag, err := parseFlag(field, value)
		if err != nil {
			return e.DayStatus(), err
		}
		mmq.TriggerAvoided = flag
		if flag {
			e.award(key, constants.PointsQuitAvoided, "Make me quit: trigger avoided")
		}

	case FieldSubstitutionPracticed:
		flag, err := parseFlag(field, value)
		if err != nil {
			return e.DayStatus(), err
		}
		mmq.SubstitutionPracticed = flag
		if flag {
			e.award(key, constants.PointsQuitPracticed, "Make me quit: substitution practiced")
		}

	default:
		return e.DayStatus(), fmt.Errorf("%w: make me quit %q", ErrUnknownField, field)
	}

	return e.refresh(constants.TaskMakeMeQuit)
}

// SetQuitProgram sets the behavior, trigger or substitution. Each is set once, in that order.
func (e *Engine) SetQuitProgram(field, value string) (DayStatus, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return e.DayStatus(), fmt.Errorf("%w: %s cannot be empty", ErrInvalidValue, field)
	}

	prog := &e.profile.MakeMeQuit
	switch field {
	case FieldBehavior:
		if prog.Behavior != nil {
			return e.DayStatus(), fmt.Errorf("%w: behavior is %q", ErrAlreadySet, *prog.Behavior)
		}
		prog.Behavior = &value

	case FieldTrigger:
		if prog.Behavior == nil {
			return e.DayStatus(), fmt.Errorf("%w: choose a behavior before its trigger", ErrLocked)
		}
		if prog.Trigger != nil {
			return e.DayStatus(), fmt.Errorf("%w: trigger is %q", ErrAlreadySet, *prog.Trigger)
		}
		prog.Trigger = &value
		e.award("makeMeQuit/trigger", constants.PointsQuitTrigger, "Make me quit: trigger identified")

	case FieldSubstitution:
		if prog.Trigger == nil {
			return e.DayStatus(), fmt.Errorf("%w: identify a trigger before its substitution", ErrLocked)
		}
		if prog.Substitution != nil {
			return e.DayStatus(), fmt.Errorf("%w: substitution is %q", ErrAlreadySet, *prog.Substitution)
		}
		prog.Substitution = &value
		e.award("makeMeQuit/substitution", constants.PointsQuitSubstitute, "Make me quit: substitution planned")

	default:
		return e.DayStatus(), fmt.Errorf("%w: make me quit program %q", ErrUnknownField, field)
	}

	return e.refresh(constants.TaskMakeMeQuit)
}

// LogGratitude stores this week's gratitude entry, replacing an earlier one.
func (e *Engine) LogGratitude(text string) error {
	week := e.Week()
	if week < constants.GratitudeFromWeek {
		return fmt.Errorf("%w: gratitude starts in week %d", ErrLocked, constants.GratitudeFromWeek)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: gratitude entry cannot be empty", ErrInvalidValue)
	}
	e.profile.PeaceOfMind.GratitudeLog[fmt.Sprintf(constants.GratitudeKeyFormat, week)] = text
	return e.save()
}
