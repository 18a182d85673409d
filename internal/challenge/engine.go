// Package challenge holds the rules of the ten-week program: which tasks are done, what they
// are worth and when a day or a week counts as complete. The UI layers talk to it only
// through Dispatch.
package challenge

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/bodysoul/internal/calendar"
	"github.com/julianstephens/bodysoul/internal/constants"
	bserrors "github.com/julianstephens/bodysoul/internal/errors"
	"github.com/julianstephens/bodysoul/internal/logger"
	"github.com/julianstephens/bodysoul/internal/models"
)

// ProfileStore is the part of storage.Provider the engine writes through.
type ProfileStore interface {
	SaveProfile(*models.UserProfile) error
	DeleteProfile() error
}

type Engine struct {
	store   ProfileStore
	profile *models.UserProfile
	now     func() time.Time
	newID   func() string

	out *Outcome
}

type Option func(*Engine)

// WithClock replaces time.Now. The clock's location decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator replaces the uuid generator used for ledger entries.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// New returns an engine over profile. A nil profile starts a fresh installation.
func New(store ProfileStore, profile *models.UserProfile, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
		out:   &Outcome{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if profile == nil {
		profile = models.NewProfile(e.Today())
	}
	if profile.DailyLogs == nil {
		profile.DailyLogs = map[string]*models.DailyLog{}
	}
	if profile.PeaceOfMind.GratitudeLog == nil {
		profile.PeaceOfMind.GratitudeLog = map[string]string{}
	}
	e.profile = profile
	e.Week()

	return e
}

// Profile returns the live profile. Callers must not mutate it.
func (e *Engine) Profile() *models.UserProfile {
	return e.profile
}

// Today returns today's date key according to the engine clock.
func (e *Engine) Today() string {
	return calendar.FormatDate(e.now())
}

// Week returns the current challenge week and refreshes the cached value on the profile.
func (e *Engine) Week() int {
	week := 1
	if e.profile.StartDate != "" {
		if start, err := calendar.ParseDate(e.profile.StartDate); err == nil {
			week = calendar.CurrentWeek(start, e.now(), constants.TotalWeeks)
		} else {
			logger.Warn("Invalid start date on profile", "startDate", e.profile.StartDate, "error", err)
		}
	}
	e.profile.CurrentChallengeWeek = week
	return week
}

// save writes the profile through. In-memory state is kept when the write fails.
func (e *Engine) save() error {
	if e.store == nil {
		return nil
	}
	if err := e.store.SaveProfile(e.profile); err != nil {
		logger.Warn("Failed to save profile", "error", err)
		if errors.Is(err, bserrors.ErrStorageUnavailable) {
			return err
		}
		return bserrors.NewStorageError("save profile", err)
	}
	return nil
}

// award adds amount to the points total unless key was awarded before.
func (e *Engine) award(key string, amount float64, reason string) bool {
	if e.profile.HasAward(key) {
		return false
	}
	entry := models.PointEntry{
		ID:        e.newID(),
		Key:       key,
		Amount:    amount,
		Reason:    reason,
		AwardedAt: e.now(),
	}
	e.profile.PointsLog = append(e.profile.PointsLog, entry)
	e.profile.Points += amount
	e.out.Awards = append(e.out.Awards, entry)
	logger.Debug("Points awarded", "key", key, "amount", amount, "total", e.profile.Points)
	return true
}

func (e *Engine) dailyAwardKey(parts ...interface{}) string {
	key := e.Today()
	for _, p := range parts {
		key += fmt.Sprintf("/%v", p)
	}
	return key
}

func (e *Engine) notice(format string, args ...interface{}) {
	e.out.Notices = append(e.out.Notices, fmt.Sprintf(format, args...))
}
