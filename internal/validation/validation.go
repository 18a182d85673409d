package validation

import (
	"fmt"
	"sort"

	"github.com/julianstephens/bodysoul/internal/calendar"
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
)

// ConflictType represents the type of profile integrity problem
type ConflictType string

const (
	ConflictHiddenIncomplete    ConflictType = "hidden_incomplete_task"
	ConflictInvalidDateKey      ConflictType = "invalid_date_key"
	ConflictWeekOutOfRange      ConflictType = "week_out_of_range"
	ConflictNegativePoints      ConflictType = "negative_points"
	ConflictDuplicateBadge      ConflictType = "duplicate_badge"
	ConflictMissingStartDate    ConflictType = "missing_start_date"
	ConflictUnknownTaskKey      ConflictType = "unknown_task_key"
	ConflictQuitStageOutOfOrder ConflictType = "quit_stage_out_of_order"
)

// Conflict represents a detected problem in a stored profile
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD format (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks stored profiles for states the engines never produce.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateProfile reports integrity problems of a loaded profile.
func (v *Validator) ValidateProfile(p *models.UserProfile) ValidationResult {
	var result ValidationResult
	add := func(t ConflictType, date, format string, args ...interface{}) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        t,
			Description: fmt.Sprintf(format, args...),
			Date:        date,
		})
	}

	if p.Points < 0 {
		add(ConflictNegativePoints, "", "points are negative (%.1f)", p.Points)
	}
	if p.CurrentChallengeWeek < 1 || p.CurrentChallengeWeek > constants.TotalWeeks {
		add(ConflictWeekOutOfRange, "", "current week %d is outside 1..%d", p.CurrentChallengeWeek, constants.TotalWeeks)
	}
	if p.HasCompletedBaseline && p.StartDate == "" {
		add(ConflictMissingStartDate, "", "baseline is complete but the start date is missing")
	}

	seen := make(map[string]bool)
	for _, b := range p.Badges {
		if seen[b] {
			add(ConflictDuplicateBadge, "", "badge %q is recorded more than once", b)
		}
		seen[b] = true
	}

	mmq := p.MakeMeQuit
	if (mmq.Trigger != nil && mmq.Behavior == nil) || (mmq.Substitution != nil && mmq.Trigger == nil) {
		add(ConflictQuitStageOutOfOrder, "", "make-me-quit stages are set out of order")
	}

	dates := make([]string, 0, len(p.DailyLogs))
	for d := range p.DailyLogs {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		log := p.DailyLogs[d]
		if _, err := calendar.ParseDate(d); err != nil {
			add(ConflictInvalidDateKey, d, "daily log key %q is not a YYYY-MM-DD date", d)
		}
		if log == nil {
			continue
		}
		for key, status := range log.TasksCompleted {
			if !key.IsValid() {
				add(ConflictUnknownTaskKey, d, "%s: unknown task %q", d, key)
			}
			if status.SwipedHidden && !status.Completed {
				add(ConflictHiddenIncomplete, d, "%s: task %s is hidden but not completed", d, key)
			}
		}
	}

	return result
}
