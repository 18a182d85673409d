package coach

import (
	"fmt"
	"strings"
)

type Area string

const (
	AreaGeneral       Area = "general"
	AreaSleep         Area = "sleep"
	AreaWeightControl Area = "weightControl"
	AreaExercise      Area = "exercise"
	AreaPeaceOfMind   Area = "peaceOfMind"
	AreaMakeMeQuit    Area = "makeMeQuit"
)

// Areas lists the motivation areas in menu order.
var Areas = []Area{AreaGeneral, AreaSleep, AreaWeightControl, AreaExercise, AreaPeaceOfMind, AreaMakeMeQuit}

var canned = map[Area][]string{
	AreaGeneral: {
		"Every day you show up is a vote for the person you want to become.",
		"Small steps, done daily, beat big plans done rarely.",
		"You are further along than you were last week. Keep going.",
	},
	AreaSleep: {
		"A steady bedtime is the quiet foundation of everything else. Protect it tonight.",
		"Screens off thirty minutes before bed. Your morning self will thank you.",
		"Consistency beats duration: same bedtime, same wake time, every day.",
	},
	AreaWeightControl: {
		"Water first, then food. Most cravings are thirst in disguise.",
		"Regular mealtimes keep your energy even and your choices easier.",
		"Track honestly, not perfectly. The numbers are information, not judgment.",
	},
	AreaExercise: {
		"The hardest rep is putting your shoes on. Do that and the rest follows.",
		"Move a little more than yesterday. Progress hides in small increments.",
		"Strength is built on the days you do not feel like training.",
	},
	AreaPeaceOfMind: {
		"Pause. Breathe in for four, hold for four, out for four. You are here now.",
		"Notice the thought, name it, and let it pass like a cloud.",
		"Make room today for one thing you enjoy, just because.",
	},
	AreaMakeMeQuit: {
		"Every urge you ride out makes the next one weaker.",
		"Know your trigger, plan your swap, and forgive the slips.",
		"You are not giving something up. You are getting yourself back.",
	},
}

// Canned returns the offline reply for an area and challenge week. The same inputs always
// give the same message.
func Canned(area Area, week int) string {
	messages, ok := canned[area]
	if !ok {
		messages = canned[AreaGeneral]
	}
	if week < 1 {
		week = 1
	}
	return messages[(week-1)%len(messages)]
}

// ParseArea accepts an area name case-insensitively. An empty name is AreaGeneral.
func ParseArea(s string) (Area, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AreaGeneral, nil
	}
	for _, a := range Areas {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown area %q", s)
}
