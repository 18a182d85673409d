package challenge

import "errors"

var (
	ErrNotRegistered      = errors.New("profile is not registered, run 'bodysoul register' first")
	ErrBaselineIncomplete = errors.New("baseline assessment is not complete, run 'bodysoul baseline' first")
	ErrDayNotReady        = errors.New("all five tasks must be completed before the day can be completed")
	ErrDayAlreadyComplete = errors.New("today is already complete")
	ErrAlreadySet         = errors.New("value is already set")
	ErrLocked             = errors.New("not unlocked yet")
	ErrUnknownTask        = errors.New("unknown task")
	ErrUnknownField       = errors.New("unknown field")
	ErrInvalidValue       = errors.New("invalid value")
	ErrTaskNotComplete    = errors.New("only completed tasks can be hidden")
)
