package challenge

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/calendar"
	"github.com/julianstephens/bodysoul/internal/constants"
)

// ReasonDayCompleted is the ledger reason of the day completion bonus.
const ReasonDayCompleted = "Day completed"

// DayStatus reports today's gate state.
func (e *Engine) DayStatus() DayStatus {
	return e.DayStatusFor(e.Today())
}

// DayStatusFor reports the gate state of date without creating its log.
func (e *Engine) DayStatusFor(date string) DayStatus {
	status := DayStatus{Date: date}
	log := e.profile.DailyLogs[date]
	if log == nil {
		return status
	}
	status.CompletedTasks = log.CompletedCount()
	status.DayCompleted = log.DayCompleted
	status.CanComplete = !log.DayCompleted && log.AllTasksCompleted()
	return status
}

// CompleteDay closes today once all five tasks are completed. It awards the day bonus and,
// when enough days of the current week are closed, the week badge.
func (e *Engine) CompleteDay() (DayStatus, error) {
	log := e.TodayLog()
	if log.DayCompleted {
		return e.DayStatus(), ErrDayAlreadyComplete
	}
	if !log.AllTasksCompleted() {
		return e.DayStatus(), fmt.Errorf("%w (%d of %d done)", ErrDayNotReady, log.CompletedCount(), len(constants.TaskKeys))
	}

	log.DayCompleted = true
	e.award(e.dailyAwardKey("day"), constants.PointsDayComplete, ReasonDayCompleted)
	e.notice("Day complete! +%.0f points.", constants.PointsDayComplete)
	e.evaluateWeek()

	return e.DayStatus(), e.save()
}

// CompletedDaysInWeek counts the closed days in the window of the given challenge week.
func (e *Engine) CompletedDaysInWeek(week int) int {
	if e.profile.StartDate == "" {
		return 0
	}
	start, err := calendar.ParseDate(e.profile.StartDate)
	if err != nil {
		return 0
	}

	count := 0
	for _, date := range calendar.WeekDates(start, week) {
		if log := e.profile.DailyLogs[date]; log != nil && log.DayCompleted {
			count++
		}
	}
	return count
}

func (e *Engine) evaluateWeek() {
	week := e.Week()
	if e.CompletedDaysInWeek(week) < constants.WeekBadgeThreshold {
		return
	}

	badge := fmt.Sprintf(constants.WeekBadgeNameFormat, week)
	if !e.profile.HasBadge(badge) {
		e.profile.Badges = append(e.profile.Badges, badge)
		e.out.Badges = append(e.out.Badges, badge)
	}
	if e.award(fmt.Sprintf("week/%d", week), constants.PointsWeekBonus, badge) {
		e.notice("Badge earned: %s! +%.0f points.", badge, constants.PointsWeekBonus)
	}
}
