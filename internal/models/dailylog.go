package models

import "github.com/julianstephens/bodysoul/internal/constants"

// DailyLog is the record for one calendar date.
type DailyLog struct {
	Sleep             SleepLog                         `json:"sleep"`
	WeightControl     WeightControlLog                 `json:"weightControl"`
	ExerciseCompleted bool                             `json:"exerciseCompleted"`
	PeaceOfMind       PeaceOfMindLog                   `json:"peaceOfMind"`
	MakeMeQuit        QuitLog                          `json:"makeMeQuit"`
	TasksCompleted    map[constants.TaskKey]TaskStatus `json:"tasksCompleted"`
	DayCompleted      bool                             `json:"dayCompleted"`
}

type SleepLog struct {
	Bedtime   string  `json:"bedtime"`
	Waketime  string  `json:"waketime"`
	TargetMet *bool   `json:"targetMet"`
	Duration  *string `json:"duration"`
}

type WeightControlLog struct {
	Mealtimes        string `json:"mealtimes"`
	Water            string `json:"water"`
	Food             string `json:"food"`
	NonWaterDrinks   string `json:"nonWaterDrinks"`
	JunkFoodStopped  bool   `json:"junkFoodStopped"`
	FruitSnacks      bool   `json:"fruitSnacks"`
	MealTimesAdhered bool   `json:"mealTimesAdhered"`
	CaloriesTracked  *int   `json:"caloriesTracked"`
}

type PeaceOfMindLog struct {
	MindfulnessCompleted       bool `json:"mindfulnessCompleted"`
	MoodBefore                 *int `json:"moodBefore"`
	StressBefore               *int `json:"stressBefore"`
	MoodAfter                  *int `json:"moodAfter"`
	StressAfter                *int `json:"stressAfter"`
	BreathingCompleted         bool `json:"breathingCompleted"`
	EnjoyableActivityCompleted bool `json:"enjoyableActivityCompleted"`
}

// QuitLog is the daily part of the behavior-change module. ContextLogged is nil only for
// logs written before the field existed; new logs start with an empty string.
type QuitLog struct {
	InstancesLogged       *int    `json:"instancesLogged"`
	ContextLogged         *string `json:"contextLogged,omitempty"`
	TriggerAvoided        bool    `json:"triggerAvoided"`
	SubstitutionPracticed bool    `json:"substitutionPracticed"`
}

// NewDailyLog returns a zeroed log with an empty completion map.
func NewDailyLog() *DailyLog {
	context := ""
	return &DailyLog{
		MakeMeQuit:     QuitLog{ContextLogged: &context},
		TasksCompleted: map[constants.TaskKey]TaskStatus{},
	}
}

// Status returns the cached completion status of a task.
func (l *DailyLog) Status(key constants.TaskKey) TaskStatus {
	return l.TasksCompleted[key]
}

// AllTasksCompleted reports whether every task key is present and completed.
func (l *DailyLog) AllTasksCompleted() bool {
	for _, key := range constants.TaskKeys {
		status, ok := l.TasksCompleted[key]
		if !ok || !status.Completed {
			return false
		}
	}
	return true
}

// CompletedCount returns how many tasks are currently completed.
func (l *DailyLog) CompletedCount() int {
	n := 0
	for _, key := range constants.TaskKeys {
		if l.TasksCompleted[key].Completed {
			n++
		}
	}
	return n
}
