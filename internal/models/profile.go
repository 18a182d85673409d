package models

import (
	"time"

	"github.com/julianstephens/bodysoul/internal/constants"
)

// UserProfile is the single persisted record of an installation. Everything else is owned by it.
type UserProfile struct {
	SchemaVersion int `json:"schemaVersion"`

	Name                 string                  `json:"name"`
	Age                  int                     `json:"age,omitempty"`
	Gender               string                  `json:"gender"`
	InitialWeight        float64                 `json:"initialWeight,omitempty"`
	CurrentWeight        float64                 `json:"currentWeight,omitempty"`
	Height               float64                 `json:"height,omitempty"`
	IdealWeight          float64                 `json:"idealWeight,omitempty"`
	CaloricDeficitTarget int                     `json:"caloricDeficitTarget,omitempty"`
	BaselineCardio       string                  `json:"baselineCardio"`
	BaselineStrength     string                  `json:"baselineStrength"`
	ExerciseTrack        constants.ExerciseTrack `json:"exerciseTrack"`

	SleepTargetBedtime  string `json:"sleepTargetBedtime,omitempty"`
	SleepTargetWaketime string `json:"sleepTargetWaketime,omitempty"`

	IsRegistered         bool   `json:"isRegistered"`
	HasCompletedBaseline bool   `json:"hasCompletedBaseline"`
	StartDate            string `json:"startDate,omitempty"`
	CurrentChallengeWeek int    `json:"currentChallengeWeek"`
	LastLoginDate        string `json:"lastLoginDate,omitempty"`

	Points    float64              `json:"points"`
	PointsLog []PointEntry         `json:"pointsLog"`
	Badges    []string             `json:"badges"`
	DailyLogs map[string]*DailyLog `json:"dailyLogs"`

	MakeMeQuit  QuitProgram        `json:"makeMeQuit"`
	PeaceOfMind PeaceOfMindProfile `json:"peaceOfMind"`
}

// PointEntry records one award. Key makes awards idempotent: an action awards at most once per key.
type PointEntry struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	AwardedAt time.Time `json:"awardedAt"`
}

// QuitProgram holds the program-level fields of the behavior-change module.
// Each field is set at most once and unlocks the next stage.
type QuitProgram struct {
	Behavior     *string `json:"behavior"`
	Trigger      *string `json:"trigger"`
	Substitution *string `json:"substitution"`
}

// PeaceOfMindProfile holds the program-level peace of mind data.
type PeaceOfMindProfile struct {
	GratitudeLog map[string]string `json:"gratitudeLog"`
}

// NewProfile returns the default data of a fresh installation.
func NewProfile(today string) *UserProfile {
	return &UserProfile{
		ExerciseTrack:        constants.TrackBeginner,
		SleepTargetBedtime:   constants.DefaultSleepTargetBedtime,
		SleepTargetWaketime:  constants.DefaultSleepTargetWaketime,
		CurrentChallengeWeek: 1,
		LastLoginDate:        today,
		PointsLog:            []PointEntry{},
		Badges:               []string{},
		DailyLogs:            map[string]*DailyLog{},
		PeaceOfMind:          PeaceOfMindProfile{GratitudeLog: map[string]string{}},
	}
}

// HasBadge reports whether the badge has already been earned.
func (p *UserProfile) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// HasAward reports whether an award with key exists in the ledger.
func (p *UserProfile) HasAward(key string) bool {
	for _, e := range p.PointsLog {
		if e.Key == key {
			return true
		}
	}
	return false
}

// SleepTargets returns the configured targets, falling back to the defaults.
func (p *UserProfile) SleepTargets() (bedtime, waketime string) {
	bedtime, waketime = p.SleepTargetBedtime, p.SleepTargetWaketime
	if bedtime == "" {
		bedtime = constants.DefaultSleepTargetBedtime
	}
	if waketime == "" {
		waketime = constants.DefaultSleepTargetWaketime
	}
	return bedtime, waketime
}

// Deficit returns the caloric deficit target, defaulting to 500 kcal.
func (p *UserProfile) Deficit() int {
	if p.CaloricDeficitTarget > 0 {
		return p.CaloricDeficitTarget
	}
	return constants.DefaultCaloricDeficit
}
