package challenge

import "github.com/julianstephens/bodysoul/internal/constants"

// TaskHint says what completes key in the given week.
func TaskHint(key constants.TaskKey, week int) string {
	switch key {
	case constants.TaskSleep:
		if week < constants.SleepTargetFromWeek {
			return "Log your bedtime and wake time."
		}
		return "Log your bedtime and wake time. Hitting your target earns a bonus."
	case constants.TaskWeightControl:
		switch {
		case week <= 1:
			return "Log your mealtimes, water and food."
		case week == 2:
			return "Log mealtimes, water and food, and check off no junk food, fruit snacks and meal times."
		default:
			return "Log mealtimes, water and food, and track your calories."
		}
	case constants.TaskExercise:
		return "Do today's cardio and strength routine."
	case constants.TaskPeaceOfMind:
		return "Do the mindfulness, breathing and enjoyable activity, and rate mood and stress before and after."
	case constants.TaskMakeMeQuit:
		switch {
		case week <= 1:
			return "Choose a behavior to quit, then log how often and in what context it happened."
		case week == 2:
			return "Identify your trigger and log how often the behavior happened."
		case week == 3:
			return "Avoid your trigger today."
		default:
			return "Plan a substitution and practice it today."
		}
	default:
		return ""
	}
}
