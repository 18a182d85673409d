package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/bodysoul/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ClockFor returns a clock reporting the current time in timezone.
// Invalid timezones fall back to local time.
func ClockFor(timezone string) func() time.Time {
	loc, err := LoadLocation(timezone)
	if err != nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesBetween returns the minutes from start to end, rolling end into the next day
// when it is earlier than start.
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseTimeToMinutes(start)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := ParseTimeToMinutes(end)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", end, err)
	}
	if e < s {
		e += 24 * 60
	}
	return e - s, nil
}

// ClockDistance returns the shortest distance in minutes between two times of day,
// going around midnight if that is shorter.
func ClockDistance(a, b string) (int, error) {
	am, err := ParseTimeToMinutes(a)
	if err != nil {
		return 0, err
	}
	bm, err := ParseTimeToMinutes(b)
	if err != nil {
		return 0, err
	}
	d := am - bm
	if d < 0 {
		d = -d
	}
	if d > 12*60 {
		d = 24*60 - d
	}
	return d, nil
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
