package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{"empty is local", "", false},
		{"Local", "Local", false},
		{"UTC", "UTC", false},
		{"invalid", "Not/AZone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation(%q) returned nil location", tt.timezone)
			}
		})
	}
}

func TestClockForFallsBackToLocal(t *testing.T) {
	now := ClockFor("Not/AZone")()
	if now.Location() != time.Local {
		t.Errorf("location = %v, want Local", now.Location())
	}
}

func TestMinutesBetween(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"23:00", "07:00", 480},
		{"22:30", "06:30", 480},
		{"01:00", "09:15", 495},
		{"07:00", "07:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			got, err := MinutesBetween(tt.start, tt.end)
			if err != nil {
				t.Fatalf("MinutesBetween() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MinutesBetween(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}

	if _, err := MinutesBetween("25:00", "07:00"); err == nil {
		t.Error("expected error for invalid time")
	}
}

func TestClockDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"22:30", "23:00", 30},
		{"23:50", "00:10", 20},
		{"00:10", "23:50", 20},
		{"06:30", "07:01", 31},
		{"12:00", "00:00", 720},
	}

	for _, tt := range tests {
		t.Run(tt.a+"~"+tt.b, func(t *testing.T) {
			got, err := ClockDistance(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ClockDistance() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ClockDistance(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseDateInLocation(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	got, err := ParseDateInLocation("2024-01-08", loc)
	if err != nil {
		t.Fatalf("ParseDateInLocation() error = %v", err)
	}
	want := time.Date(2024, 1, 8, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseDateInLocation() = %v, want %v", got, want)
	}

	if _, err := ParseDateInLocation("2024-13-01", loc); err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestValidateTimeFormat(t *testing.T) {
	if !ValidateTimeFormat("06:30") {
		t.Error("06:30 should be valid")
	}
	if ValidateTimeFormat("6.30pm") {
		t.Error("6.30pm should be invalid")
	}
}

func TestExpandPath(t *testing.T) {
	got, err := ExpandPath("/tmp/bodysoul.db")
	if err != nil || got != "/tmp/bodysoul.db" {
		t.Errorf("ExpandPath(abs) = %q, %v", got, err)
	}

	t.Setenv("HOME", "/home/tester")
	got, err = ExpandPath("~/.config/bodysoul/bodysoul.db")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != "/home/tester/.config/bodysoul/bodysoul.db" {
		t.Errorf("ExpandPath(~) = %q", got)
	}
}

func TestIsPostgresConnString(t *testing.T) {
	tests := map[string]bool{
		"postgres://user@localhost/bodysoul":   true,
		"postgresql://user@localhost/bodysoul": true,
		"host=localhost dbname=bodysoul":       true,
		"~/.config/bodysoul/bodysoul.db":       false,
		"/tmp/profile.json":                    false,
	}
	for in, want := range tests {
		if got := IsPostgresConnString(in); got != want {
			t.Errorf("IsPostgresConnString(%q) = %v, want %v", in, got, want)
		}
	}
}
