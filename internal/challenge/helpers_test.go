package challenge

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/julianstephens/bodysoul/internal/models"
)

type memStore struct {
	saved   []byte
	saves   int
	deletes int
	err     error
}

func (m *memStore) SaveProfile(p *models.UserProfile) error {
	if m.err != nil {
		return m.err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	m.saved = data
	m.saves++
	return nil
}

func (m *memStore) DeleteProfile() error {
	if m.err != nil {
		return m.err
	}
	m.saved = nil
	m.deletes++
	return nil
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) set(t *testing.T, date string) {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	c.now = d.Add(9 * time.Hour)
}

// newActiveEngine returns an engine for a registered profile whose challenge started on start.
func newActiveEngine(t *testing.T, start, today string) (*Engine, *memStore, *testClock) {
	t.Helper()
	clock := &testClock{}
	clock.set(t, today)

	p := models.NewProfile(start)
	p.Name = "Ana"
	p.Age = 34
	p.Gender = "female"
	p.Height = 168
	p.IsRegistered = true
	p.HasCompletedBaseline = true
	p.StartDate = start

	store := &memStore{}
	return New(store, p, WithClock(clock.Now)), store, clock
}

// completeAllTasks fills every task for a week-1 day.
func completeAllTasks(t *testing.T, e *Engine) {
	t.Helper()
	steps := []Event{
		LogSleep{FieldBedtime, "23:00"},
		LogSleep{FieldWaketime, "07:00"},
		LogWeight{FieldMealtimes, "8am, 1pm, 6pm"},
		LogWeight{FieldWater, "2"},
		LogWeight{FieldFood, "oats"},
		MarkExercise{Done: true},
		LogPeaceOfMind{FieldMindfulness, "true"},
		LogPeaceOfMind{FieldBreathing, "true"},
		LogPeaceOfMind{FieldEnjoyable, "true"},
		LogPeaceOfMind{FieldMoodBefore, "4"},
		LogPeaceOfMind{FieldStressBefore, "7"},
		LogPeaceOfMind{FieldMoodAfter, "6"},
		LogPeaceOfMind{FieldStressAfter, "5"},
		LogQuit{FieldInstancesLogged, "2"},
	}
	if e.Profile().MakeMeQuit.Behavior == nil {
		steps = append(steps, SetQuitProgram{FieldBehavior, "late-night snacking"})
	}
	for _, ev := range steps {
		_, err := e.Dispatch(ev)
		require.NoError(t, err, "event %#v", ev)
	}
}

func assertHiddenImpliesCompleted(t *testing.T, p *models.UserProfile) {
	t.Helper()
	for date, log := range p.DailyLogs {
		for key, status := range log.TasksCompleted {
			if status.SwipedHidden {
				require.True(t, status.Completed, "%s/%s is hidden but not completed", date, key)
			}
		}
	}
}
