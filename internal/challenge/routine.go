package challenge

import "github.com/julianstephens/bodysoul/internal/constants"

// Routine is the exercise prescription for a day.
type Routine struct {
	Phase    int
	Cardio   string
	Strength string
}

var routines = map[int]map[constants.ExerciseTrack]Routine{
	1: {
		constants.TrackBeginner:     {Cardio: "20 min brisk walk", Strength: "2 sets: 8 wall push-ups, 10 chair squats, 20s plank"},
		constants.TrackIntermediate: {Cardio: "25 min jog/walk intervals (2 min jog, 1 min walk)", Strength: "3 sets: 10 push-ups, 15 squats, 30s plank"},
		constants.TrackAdvanced:     {Cardio: "30 min steady run", Strength: "3 sets: 15 push-ups, 20 jump squats, 45s plank"},
	},
	2: {
		constants.TrackBeginner:     {Cardio: "30 min brisk walk with 3 hills or stair sets", Strength: "3 sets: 10 knee push-ups, 12 squats, 10 lunges per leg, 30s plank"},
		constants.TrackIntermediate: {Cardio: "30 min run with 5 x 1 min fast intervals", Strength: "3 sets: 15 push-ups, 15 lunges per leg, 12 glute bridges, 45s plank"},
		constants.TrackAdvanced:     {Cardio: "35 min tempo run", Strength: "4 sets: 20 push-ups, 15 jump lunges per leg, 10 burpees, 60s plank"},
	},
	3: {
		constants.TrackBeginner:     {Cardio: "35 min walk/jog intervals", Strength: "3 sets: 12 push-ups, 15 squats, 12 lunges per leg, 45s plank"},
		constants.TrackIntermediate: {Cardio: "40 min run with 6 x 2 min fast intervals", Strength: "4 sets: 20 push-ups, 20 split squats, 15 burpees, 60s plank"},
		constants.TrackAdvanced:     {Cardio: "45 min run with hill repeats", Strength: "4 sets: 25 push-ups, 20 pistol squat progressions, 15 burpees, 90s plank"},
	},
}

var lowImpactCardio = map[int]string{
	1: "20 min brisk walk or stationary bike",
	2: "30 min cycling or swimming at a steady pace",
	3: "40 min cycling, swimming or elliptical with light intervals",
}

// Phase maps a challenge week to its training phase: weeks 1-3, 4-6 and 7-10.
func Phase(week int) int {
	switch {
	case week <= 3:
		return 1
	case week <= 6:
		return 2
	default:
		return 3
	}
}

// ExerciseRoutine returns today's prescription for the profile's track. From age 50 the
// cardio is swapped for a low-impact option.
func (e *Engine) ExerciseRoutine() Routine {
	phase := Phase(e.Week())
	track := e.profile.ExerciseTrack
	routine, ok := routines[phase][track]
	if !ok {
		routine = routines[phase][constants.TrackBeginner]
	}
	if e.profile.Age >= 50 {
		routine.Cardio = lowImpactCardio[phase]
	}
	routine.Phase = phase
	return routine
}
