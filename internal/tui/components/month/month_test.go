package month

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func fixedToday() time.Time {
	return time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)
}

func TestModel_Navigation(t *testing.T) {
	m := New(fixedToday, nil, false)

	tests := []struct {
		key       string
		wantMonth time.Month
		wantYear  int
	}{
		{key: "left", wantMonth: time.January, wantYear: 2024},
		{key: "left", wantMonth: time.December, wantYear: 2023},
		{key: "t", wantMonth: time.February, wantYear: 2024},
		{key: "n", wantMonth: time.March, wantYear: 2024},
	}

	for _, tt := range tests {
		var msg tea.KeyMsg
		switch tt.key {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)}
		}
		m, _ = m.Update(msg)

		g := m.Grid()
		if g.Month != tt.wantMonth || g.Year != tt.wantYear {
			t.Errorf("after %q grid = %s %d, want %s %d", tt.key, g.Month, g.Year, tt.wantMonth, tt.wantYear)
		}
	}
}

func TestRender_MarksCompletedDays(t *testing.T) {
	completed := func(date string) bool { return date == "2024-02-10" }
	m := New(fixedToday, completed, true)

	out := m.View()
	if !strings.Contains(out, "February 2024") {
		t.Errorf("View() missing title:\n%s", out)
	}
	if !strings.Contains(out, "10✓") {
		t.Errorf("View() missing completed mark:\n%s", out)
	}
	if strings.Contains(out, "11✓") {
		t.Errorf("View() marks an incomplete day:\n%s", out)
	}
}
