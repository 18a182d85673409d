package models

import (
	"encoding/json"
	"testing"

	"github.com/julianstephens/bodysoul/internal/constants"
)

func TestTaskStatusUnmarshalLegacyBoolean(t *testing.T) {
	data := []byte(`{
		"tasksCompleted": {
			"sleep": true,
			"exercise": false,
			"peaceOfMind": {"completed": true, "swipedHidden": true},
			"makeMeQuit": null
		}
	}`)

	var log DailyLog
	if err := json.Unmarshal(data, &log); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	tests := []struct {
		key  constants.TaskKey
		want TaskStatus
	}{
		{constants.TaskSleep, TaskStatus{Completed: true}},
		{constants.TaskExercise, TaskStatus{}},
		{constants.TaskPeaceOfMind, TaskStatus{Completed: true, SwipedHidden: true}},
		{constants.TaskMakeMeQuit, TaskStatus{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := log.TasksCompleted[tt.key]; got != tt.want {
				t.Errorf("TasksCompleted[%s] = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestTaskStatusUnmarshalRejectsGarbage(t *testing.T) {
	var s TaskStatus
	if err := json.Unmarshal([]byte(`"yes"`), &s); err == nil {
		t.Error("expected error for string task status")
	}
}

func TestTaskStatusMarshalsObjectForm(t *testing.T) {
	data, err := json.Marshal(TaskStatus{Completed: true})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"completed":true,"swipedHidden":false}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestTaskStatusNormalize(t *testing.T) {
	got := TaskStatus{Completed: false, SwipedHidden: true}.Normalize()
	if got.SwipedHidden {
		t.Error("hidden flag must be cleared on an incomplete task")
	}
	kept := TaskStatus{Completed: true, SwipedHidden: true}.Normalize()
	if !kept.SwipedHidden {
		t.Error("hidden flag must be kept on a completed task")
	}
}

func TestDailyLogAllTasksCompleted(t *testing.T) {
	log := NewDailyLog()
	if log.AllTasksCompleted() {
		t.Error("empty log must not be complete")
	}
	for _, key := range constants.TaskKeys[:4] {
		log.TasksCompleted[key] = TaskStatus{Completed: true}
	}
	if log.AllTasksCompleted() {
		t.Error("log with a missing key must not be complete")
	}
	log.TasksCompleted[constants.TaskMakeMeQuit] = TaskStatus{Completed: true}
	if !log.AllTasksCompleted() {
		t.Error("log with all five keys completed must be complete")
	}
	if got := log.CompletedCount(); got != 5 {
		t.Errorf("CompletedCount() = %d, want 5", got)
	}
}

func TestSettingsRoundTripThroughMap(t *testing.T) {
	s := DefaultSettings()
	s.DarkMode = true
	s.Timezone = "Europe/Berlin"

	got, err := SettingsFromMap(s.ToMap())
	if err != nil {
		t.Fatalf("SettingsFromMap() error = %v", err)
	}
	if got != s {
		t.Errorf("SettingsFromMap() = %+v, want %+v", got, s)
	}

	if _, err := SettingsFromMap(map[string]string{SettingDarkMode: "maybe"}); err == nil {
		t.Error("expected parse error for invalid boolean")
	}
}
