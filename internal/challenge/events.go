package challenge

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
)

// Event is a user action on today's tasks. The CLI and the TUI build events and hand them
// to Dispatch; neither mutates the profile directly.
type Event interface {
	isEvent()
}

type LogSleep struct {
	Field string
	Value string
}

type LogWeight struct {
	Field string
	Value string
}

type MarkExercise struct {
	Done bool
}

type LogPeaceOfMind struct {
	Field string
	Value string
}

type LogQuit struct {
	Field string
	Value string
}

type SetQuitProgram struct {
	Field string
	Value string
}

type LogGratitude struct {
	Text string
}

type HideTask struct {
	Task constants.TaskKey
}

type ShowTask struct {
	Task constants.TaskKey
}

type CompleteDay struct{}

func (LogSleep) isEvent()       {}
func (LogWeight) isEvent()      {}
func (MarkExercise) isEvent()   {}
func (LogPeaceOfMind) isEvent() {}
func (LogQuit) isEvent()        {}
func (SetQuitProgram) isEvent() {}
func (LogGratitude) isEvent()   {}
func (HideTask) isEvent()       {}
func (ShowTask) isEvent()       {}
func (CompleteDay) isEvent()    {}

// Outcome is what one event changed.
type Outcome struct {
	Awards  []models.PointEntry
	Badges  []string
	Day     DayStatus
	Notices []string
}

// Points returns the total awarded by the event.
func (o Outcome) Points() float64 {
	var total float64
	for _, a := range o.Awards {
		total += a.Amount
	}
	return total
}

// Dispatch applies ev to today's log. The outcome is returned even when saving fails, so
// callers can report what happened before surfacing the storage error.
func (e *Engine) Dispatch(ev Event) (Outcome, error) {
	e.out = &Outcome{}
	defer func() { e.out = &Outcome{} }()

	if err := e.requireActive(); err != nil {
		return Outcome{Day: e.DayStatus()}, err
	}

	var (
		day DayStatus
		err error
	)
	switch ev := ev.(type) {
	case LogSleep:
		day, err = e.LogSleep(ev.Field, ev.Value)
	case LogWeight:
		day, err = e.LogWeight(ev.Field, ev.Value)
	case MarkExercise:
		day, err = e.MarkExercise(ev.Done)
	case LogPeaceOfMind:
		day, err = e.LogPeaceOfMind(ev.Field, ev.Value)
	case LogQuit:
		day, err = e.LogQuit(ev.Field, ev.Value)
	case SetQuitProgram:
		day, err = e.SetQuitProgram(ev.Field, ev.Value)
	case LogGratitude:
		err = e.LogGratitude(ev.Text)
		day = e.DayStatus()
	case HideTask:
		day, err = e.HideTask(ev.Task)
	case ShowTask:
		day, err = e.ShowTask(ev.Task)
	case CompleteDay:
		day, err = e.CompleteDay()
	default:
		return Outcome{Day: e.DayStatus()}, fmt.Errorf("unsupported event %T", ev)
	}

	out := *e.out
	out.Day = day
	return out, err
}

func (e *Engine) requireActive() error {
	if !e.profile.IsRegistered {
		return ErrNotRegistered
	}
	if !e.profile.HasCompletedBaseline {
		return ErrBaselineIncomplete
	}
	return nil
}
