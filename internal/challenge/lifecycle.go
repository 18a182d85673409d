package challenge

import (
	"fmt"
	"math"

	"github.com/julianstephens/bodysoul/internal/calendar"
	"github.com/julianstephens/bodysoul/internal/constants"
	bserrors "github.com/julianstephens/bodysoul/internal/errors"
	"github.com/julianstephens/bodysoul/internal/logger"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/validation"
)

// Register stores the identity part of the profile. Invalid input commits nothing.
func (e *Engine) Register(in validation.RegistrationInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}

	p := e.profile
	p.Name = in.Name
	p.Age = in.Age
	p.Gender = in.Gender
	p.InitialWeight = in.InitialWeight
	p.Height = in.Height
	p.IdealWeight = IdealWeight(in.Height)
	if p.CurrentWeight == 0 {
		p.CurrentWeight = in.InitialWeight
	}
	p.IsRegistered = true

	return e.save()
}

// CompleteBaseline stores the fitness baseline and starts the challenge today. A start date
// set earlier is kept.
func (e *Engine) CompleteBaseline(in validation.BaselineInput) error {
	if !e.profile.IsRegistered {
		return ErrNotRegistered
	}
	if err := validation.Struct(in); err != nil {
		return err
	}

	p := e.profile
	if in.CurrentWeight > 0 {
		p.CurrentWeight = in.CurrentWeight
	}
	p.CaloricDeficitTarget = in.CaloricDeficitTarget
	if p.CaloricDeficitTarget == 0 {
		p.CaloricDeficitTarget = constants.DefaultCaloricDeficit
	}
	p.BaselineCardio = in.BaselineCardio
	p.BaselineStrength = in.BaselineStrength
	p.ExerciseTrack = constants.ExerciseTrack(in.ExerciseTrack)
	if in.SleepTargetBedtime != "" {
		p.SleepTargetBedtime = in.SleepTargetBedtime
	}
	if in.SleepTargetWaketime != "" {
		p.SleepTargetWaketime = in.SleepTargetWaketime
	}
	p.IdealWeight = IdealWeight(p.Height)

	p.HasCompletedBaseline = true
	if p.StartDate == "" {
		p.StartDate = e.Today()
	}
	p.LastLoginDate = e.Today()
	e.Week()

	return e.save()
}

// Screen picks the first screen from the lifecycle flags.
func (e *Engine) Screen() constants.Screen {
	switch {
	case !e.profile.IsRegistered:
		return constants.ScreenWelcome
	case !e.profile.HasCompletedBaseline:
		return constants.ScreenBaseline
	default:
		return constants.ScreenDashboard
	}
}

// StartOver deletes the stored profile and resets to a fresh installation.
// The in-memory profile is kept when the stored one cannot be deleted.
func (e *Engine) StartOver() error {
	if e.store != nil {
		if err := e.store.DeleteProfile(); err != nil {
			return bserrors.NewStorageError("delete profile", err)
		}
	}
	e.profile = models.NewProfile(e.Today())
	logger.Info("Profile reset")
	return nil
}

// CheckMissedDays counts the days since the last visit (or the start date) up to yesterday
// that were not completed, and records today as the last visit.
func (e *Engine) CheckMissedDays() (int, error) {
	today := e.Today()
	p := e.profile
	if p.LastLoginDate == today {
		return 0, nil
	}
	if !p.HasCompletedBaseline {
		p.LastLoginDate = today
		return 0, nil
	}

	from := p.LastLoginDate
	if from == "" || from < p.StartDate {
		from = p.StartDate
	}

	missed := 0
	if start, err := calendar.ParseDate(from); err == nil {
		todayDate, _ := calendar.ParseDate(today)
		for d := start; d.Before(todayDate); d = d.AddDate(0, 0, 1) {
			if log := p.DailyLogs[calendar.FormatDate(d)]; log == nil || !log.DayCompleted {
				missed++
			}
		}
	}

	p.LastLoginDate = today
	if missed > 0 {
		e.notice("You missed %d day(s). Every day is a fresh start!", missed)
	}
	return missed, e.save()
}

// Notices returns and clears notices raised outside of Dispatch.
func (e *Engine) Notices() []string {
	notices := e.out.Notices
	e.out = &Outcome{}
	return notices
}

// IdealWeight returns the weight in kg for a BMI of 22 at the given height, to one decimal.
func IdealWeight(heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(constants.IdealBMI*m*m*10) / 10
}

// DailyCalorieGoal returns the calorie budget after the deficit.
func (e *Engine) DailyCalorieGoal() int {
	base := constants.DefaultCalorieBase
	if e.profile.Gender == "female" {
		base = constants.FemaleCalorieBase
	}
	return base - e.profile.Deficit()
}

// Progress returns the share of the challenge reached, as a percentage.
func (e *Engine) Progress() float64 {
	return float64(e.Week()) / float64(constants.TotalWeeks) * 100
}

// Summary is a one-line status for the CLI.
func (e *Engine) Summary() string {
	return fmt.Sprintf("Week %d of %d · %.1f points · %d badge(s)", e.Week(), constants.TotalWeeks, e.profile.Points, len(e.profile.Badges))
}
