package challenge

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/utils"
)

// SleepFilled reports whether both times of the night are logged.
func SleepFilled(l models.SleepLog) bool {
	return l.Bedtime != "" && l.Waketime != ""
}

// SleepDuration formats the time slept, rolling a wake time earlier than bedtime into the next day.
func SleepDuration(bedtime, waketime string) (string, error) {
	minutes, err := utils.MinutesBetween(bedtime, waketime)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.1f hours", float64(minutes)/60), nil
}

// SleepTargetMet reports whether both times are within the tolerance of their targets.
func SleepTargetMet(bedtime, waketime, targetBedtime, targetWaketime string) bool {
	bedDiff, err := utils.ClockDistance(bedtime, targetBedtime)
	if err != nil {
		return false
	}
	wakeDiff, err := utils.ClockDistance(waketime, targetWaketime)
	if err != nil {
		return false
	}
	return bedDiff <= constants.SleepTargetToleranceMin && wakeDiff <= constants.SleepTargetToleranceMin
}

// WeightControlFilled applies the week's requirements to the weight control log.
func WeightControlFilled(l models.WeightControlLog, week int) bool {
	trio := l.Mealtimes != "" && l.Water != "" && l.Food != ""
	switch {
	case week <= 1:
		return trio
	case week == 2:
		return trio && l.JunkFoodStopped && l.FruitSnacks && l.MealTimesAdhered
	default:
		return trio && l.CaloriesTracked != nil
	}
}

// PeaceOfMindFilled requires the three practices and all four mood and stress ratings.
func PeaceOfMindFilled(l models.PeaceOfMindLog) bool {
	return l.MindfulnessCompleted && l.BreathingCompleted && l.EnjoyableActivityCompleted &&
		l.MoodBefore != nil && l.StressBefore != nil && l.MoodAfter != nil && l.StressAfter != nil
}

// MakeMeQuitFilled applies the staged requirements of the behavior-change module.
// Nothing counts until a behavior has been chosen.
func MakeMeQuitFilled(l models.QuitLog, p models.QuitProgram, week int) bool {
	if p.Behavior == nil {
		return false
	}
	switch {
	case week <= 1:
		return l.InstancesLogged != nil && l.ContextLogged != nil
	case week == 2:
		return p.Trigger != nil && l.InstancesLogged != nil
	case week == 3:
		return p.Trigger != nil && l.TriggerAvoided
	default:
		return p.Trigger != nil && p.Substitution != nil && l.SubstitutionPracticed
	}
}

// Filled evaluates a task's predicate against today's log. The cached tasksCompleted flag is not consulted.
func (e *Engine) Filled(key constants.TaskKey) (bool, error) {
	log := e.TodayLog()
	week := e.Week()

	switch key {
	case constants.TaskSleep:
		return SleepFilled(log.Sleep), nil
	case constants.TaskWeightControl:
		return WeightControlFilled(log.WeightControl, week), nil
	case constants.TaskExercise:
		return log.ExerciseCompleted, nil
	case constants.TaskPeaceOfMind:
		return PeaceOfMindFilled(log.PeaceOfMind), nil
	case constants.TaskMakeMeQuit:
		return MakeMeQuitFilled(log.MakeMeQuit, e.profile.MakeMeQuit, week), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownTask, key)
	}
}
