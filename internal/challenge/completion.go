package challenge

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
)

// DayStatus describes today's progress towards the complete-day action.
type DayStatus struct {
	Date           string
	CompletedTasks int
	CanComplete    bool
	DayCompleted   bool
}

// SetTaskCompletion records whether key is substantially filled today. The hidden flag
// survives while the task stays completed and is cleared when it is not.
func (e *Engine) SetTaskCompletion(key constants.TaskKey, filled bool) (DayStatus, error) {
	if !key.IsValid() {
		return e.DayStatus(), fmt.Errorf("%w: %q", ErrUnknownTask, key)
	}

	log := e.TodayLog()
	wasReady := log.AllTasksCompleted()

	prior := log.TasksCompleted[key]
	next := models.TaskStatus{Completed: filled, SwipedHidden: prior.SwipedHidden}
	if !filled {
		next.SwipedHidden = false
	}
	log.TasksCompleted[key] = next

	if err := e.save(); err != nil {
		return e.DayStatus(), err
	}

	status := e.DayStatus()
	if status.CanComplete && !wasReady {
		e.notice("All five tasks are done. Complete the day to earn %.0f points.", constants.PointsDayComplete)
	}
	return status, nil
}

// refresh recomputes key's predicate and feeds it to SetTaskCompletion.
func (e *Engine) refresh(key constants.TaskKey) (DayStatus, error) {
	filled, err := e.Filled(key)
	if err != nil {
		return e.DayStatus(), err
	}
	return e.SetTaskCompletion(key, filled)
}

// HideTask dismisses a completed task card without touching its completion.
func (e *Engine) HideTask(key constants.TaskKey) (DayStatus, error) {
	return e.setHidden(key, true)
}

// ShowTask brings a hidden task card back.
func (e *Engine) ShowTask(key constants.TaskKey) (DayStatus, error) {
	return e.setHidden(key, false)
}

func (e *Engine) setHidden(key constants.TaskKey, hidden bool) (DayStatus, error) {
	if !key.IsValid() {
		return e.DayStatus(), fmt.Errorf("%w: %q", ErrUnknownTask, key)
	}

	log := e.TodayLog()
	status := log.TasksCompleted[key]
	if hidden && !status.Completed {
		return e.DayStatus(), fmt.Errorf("%w: %s", ErrTaskNotComplete, constants.TaskTitles[key])
	}
	if status.SwipedHidden == hidden {
		return e.DayStatus(), nil
	}

	status.SwipedHidden = hidden
	log.TasksCompleted[key] = status
	return e.DayStatus(), e.save()
}
