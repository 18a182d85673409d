package challenge

import (
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
)

// GetOrCreateLog returns the log for date, creating the default structure on first access.
// The same record is returned until the profile is replaced, and it is normalized on every fetch.
func (e *Engine) GetOrCreateLog(date string) *models.DailyLog {
	log := e.profile.DailyLogs[date]
	if log == nil {
		log = models.NewDailyLog()
		e.profile.DailyLogs[date] = log
	}
	normalizeLog(log)
	return log
}

// TodayLog is GetOrCreateLog for today.
func (e *Engine) TodayLog() *models.DailyLog {
	return e.GetOrCreateLog(e.Today())
}

func normalizeLog(log *models.DailyLog) {
	if log.TasksCompleted == nil {
		log.TasksCompleted = map[constants.TaskKey]models.TaskStatus{}
	}
	for key, status := range log.TasksCompleted {
		log.TasksCompleted[key] = status.Normalize()
	}
}
