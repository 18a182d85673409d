package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/logger"
	"github.com/julianstephens/bodysoul/internal/models"
)

// CurrentSchemaVersion is the profile shape written by this version of the program.
const CurrentSchemaVersion = 2

// upgradeStep moves a profile from version from to from+1.
type upgradeStep struct {
	from int
	name string
	fn   func(*models.UserProfile)
}

var upgradeSteps = []upgradeStep{
	{from: 0, name: "backfill missing fields", fn: backfillDefaults},
	{from: 1, name: "normalize task statuses", fn: normalizeTaskStatuses},
}

// DecodeProfile parses a stored profile record and upgrades it to CurrentSchemaVersion.
// Legacy boolean task entries are handled by models.TaskStatus during decoding.
func DecodeProfile(data []byte) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := Upgrade(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// EncodeProfile serializes a profile for storage.
func EncodeProfile(p *models.UserProfile) ([]byte, error) {
	if p.SchemaVersion == 0 {
		p.SchemaVersion = CurrentSchemaVersion
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize profile: %w", err)
	}
	return data, nil
}

// Upgrade applies every pending step to p in order. It is a no-op for current profiles.
func Upgrade(p *models.UserProfile) error {
	if p.SchemaVersion > CurrentSchemaVersion {
		return fmt.Errorf("profile schema version (%d) is newer than supported version (%d) - please upgrade the application", p.SchemaVersion, CurrentSchemaVersion)
	}
	for _, step := range upgradeSteps {
		if p.SchemaVersion != step.from {
			continue
		}
		logger.Debug("Upgrading profile", "from", step.from, "to", step.from+1, "step", step.name)
		step.fn(p)
		p.SchemaVersion = step.from + 1
	}
	return nil
}

func backfillDefaults(p *models.UserProfile) {
	if p.Badges == nil {
		p.Badges = []string{}
	}
	if p.DailyLogs == nil {
		p.DailyLogs = map[string]*models.DailyLog{}
	}
	if p.PeaceOfMind.GratitudeLog == nil {
		p.PeaceOfMind.GratitudeLog = map[string]string{}
	}
	if p.ExerciseTrack == "" {
		p.ExerciseTrack = constants.TrackBeginner
	}
	if p.SleepTargetBedtime == "" {
		p.SleepTargetBedtime = constants.DefaultSleepTargetBedtime
	}
	if p.SleepTargetWaketime == "" {
		p.SleepTargetWaketime = constants.DefaultSleepTargetWaketime
	}
	if p.CurrentChallengeWeek < 1 {
		p.CurrentChallengeWeek = 1
	}
	if p.Points < 0 {
		p.Points = 0
	}
}

func normalizeTaskStatuses(p *models.UserProfile) {
	for date, log := range p.DailyLogs {
		if log == nil {
			p.DailyLogs[date] = models.NewDailyLog()
			continue
		}
		if log.TasksCompleted == nil {
			log.TasksCompleted = map[constants.TaskKey]models.TaskStatus{}
		}
		for key, status := range log.TasksCompleted {
			log.TasksCompleted[key] = status.Normalize()
		}
	}
	if p.PointsLog == nil {
		p.PointsLog = []models.PointEntry{}
	}
}
