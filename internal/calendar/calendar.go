// Package calendar derives the challenge week from the start date and lays out month grids.
package calendar

import (
	"math"
	"time"

	"github.com/julianstephens/bodysoul/internal/constants"
)

const day = 24 * time.Hour

// Cell is one slot of a month grid. Blank cells pad the first week and have Day == 0.
type Cell struct {
	Day         int
	Date        string
	IsToday     bool
	IsCompleted bool
}

// Blank reports whether the cell is leading padding.
func (c Cell) Blank() bool { return c.Day == 0 }

// Grid is the layout of one month, Sunday first.
type Grid struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// Title returns e.g. "January 2024".
func (g Grid) Title() string {
	return time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Weeks splits the cells into rows of seven. The last row may be short.
func (g Grid) Weeks() [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(g.Cells); i += constants.DaysPerWeek {
		end := min(i+constants.DaysPerWeek, len(g.Cells))
		rows = append(rows, g.Cells[i:end])
	}
	return rows
}

// civil drops the time of day and zone so date arithmetic is free of DST shifts.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD key into a civil date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// FormatDate formats t as a YYYY-MM-DD key using t's own calendar day.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DaysBetween returns the whole days from a to b, negative when b is earlier.
func DaysBetween(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)) / day)
}

// CurrentWeek returns the 1-based challenge week for today. The result is always within
// [1, totalWeeks] and never decreases as today advances.
func CurrentWeek(startDate, today time.Time, totalWeeks int) int {
	diff := civil(today).Sub(civil(startDate))
	if diff < 0 {
		diff = -diff
	}
	diffDays := int(math.Ceil(float64(diff) / float64(day)))
	week := diffDays/constants.DaysPerWeek + 1
	if week > totalWeeks {
		week = totalWeeks
	}
	if week < 1 {
		week = 1
	}
	return week
}

// WeekWindow returns the first and last day of the given challenge week.
func WeekWindow(startDate time.Time, week int) (from, to time.Time) {
	from = civil(startDate).AddDate(0, 0, (week-1)*constants.DaysPerWeek)
	to = from.AddDate(0, 0, constants.DaysPerWeek-1)
	return from, to
}

// WeekDates returns the seven date keys of the given challenge week.
func WeekDates(startDate time.Time, week int) []string {
	from, _ := WeekWindow(startDate, week)
	dates := make([]string, 0, constants.DaysPerWeek)
	for i := 0; i < constants.DaysPerWeek; i++ {
		dates = append(dates, FormatDate(from.AddDate(0, 0, i)))
	}
	return dates
}

// ShiftMonth moves display by offset months. It anchors on the 1st so that a 31st
// never skips a short month.
func ShiftMonth(display time.Time, offset int) time.Time {
	first := time.Date(display.Year(), display.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, offset, 0)
}

// MonthGrid lays out the month containing display. completed reports whether a date key
// has a completed day; it may be nil.
func MonthGrid(display, today time.Time, completed func(date string) bool) Grid {
	first := time.Date(display.Year(), display.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayKey := FormatDate(today)

	leading := int(first.Weekday())
	cells := make([]Cell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{})
	}

	for d := 1; d <= daysInMonth; d++ {
		key := FormatDate(first.AddDate(0, 0, d-1))
		cell := Cell{
			Day:     d,
			Date:    key,
			IsToday: key == todayKey,
		}
		if completed != nil {
			cell.IsCompleted = completed(key)
		}
		cells = append(cells, cell)
	}

	return Grid{Year: first.Year(), Month: first.Month(), Cells: cells}
}
