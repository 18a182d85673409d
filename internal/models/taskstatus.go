package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskStatus is the cached completion state of one task on one day.
// A hidden task is always completed.
type TaskStatus struct {
	Completed    bool `json:"completed"`
	SwipedHidden bool `json:"swipedHidden"`
}

// UnmarshalJSON accepts both the object form and the legacy bare boolean,
// which decodes to {completed: <bool>, swipedHidden: false}.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*s = TaskStatus{}
		return nil
	case bytes.Equal(trimmed, []byte("true")), bytes.Equal(trimmed, []byte("false")):
		var completed bool
		if err := json.Unmarshal(trimmed, &completed); err != nil {
			return err
		}
		*s = TaskStatus{Completed: completed}
		return nil
	}

	type object TaskStatus
	var o object
	if err := json.Unmarshal(trimmed, &o); err != nil {
		return fmt.Errorf("task status must be a boolean or an object: %w", err)
	}
	*s = TaskStatus(o)
	return nil
}

// Normalize enforces that a hidden task is completed.
func (s TaskStatus) Normalize() TaskStatus {
	if !s.Completed {
		s.SwipedHidden = false
	}
	return s
}
