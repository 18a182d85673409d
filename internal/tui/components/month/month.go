// Package month renders the challenge calendar: one month at a time with completed days
// and today highlighted.
package month

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bodysoul/internal/calendar"
)

const cellWidth = 5

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type Styles struct {
	Title     lipgloss.Style
	Weekday   lipgloss.Style
	Day       lipgloss.Style
	Today     lipgloss.Style
	Completed lipgloss.Style
	Legend    lipgloss.Style
}

// DefaultStyles returns the light or dark palette.
func DefaultStyles(dark bool) Styles {
	accent, muted, done := lipgloss.Color("62"), lipgloss.Color("245"), lipgloss.Color("28")
	if dark {
		accent, muted, done = lipgloss.Color("205"), lipgloss.Color("240"), lipgloss.Color("42")
	}
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent).Width(cellWidth * 7).Align(lipgloss.Center),
		Weekday:   cell.Foreground(muted),
		Day:       cell,
		Today:     cell.Bold(true).Underline(true).Foreground(accent),
		Completed: cell.Bold(true).Foreground(done),
		Legend:    lipgloss.NewStyle().Foreground(muted),
	}
}

// Render draws g. Completed days carry a check mark so the grid reads without color too.
func Render(g calendar.Grid, s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(g.Title()))
	b.WriteString("\n")

	header := make([]string, len(weekdays))
	for i, d := range weekdays {
		header[i] = s.Weekday.Render(d)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, week := range g.Weeks() {
		cells := make([]string, len(week))
		for i, c := range week {
			cells[i] = renderCell(c, s)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString(s.Legend.Render("✓ day completed   _ today"))
	return b.String()
}

func renderCell(c calendar.Cell, s Styles) string {
	switch {
	case c.Blank():
		return s.Day.Render("")
	case c.IsCompleted:
		return s.Completed.Render(fmt.Sprintf("%d✓", c.Day))
	case c.IsToday:
		return s.Today.Render(fmt.Sprintf("%d", c.Day))
	default:
		return s.Day.Render(fmt.Sprintf("%d", c.Day))
	}
}

type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "prev month"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "this month"),
		),
	}
}

// Model is the calendar tab. Offset counts months from the current one.
type Model struct {
	Offset    int
	today     func() time.Time
	completed func(date string) bool
	styles    Styles
	keys      KeyMap
}

func New(today func() time.Time, completed func(date string) bool, dark bool) Model {
	return Model{
		today:     today,
		completed: completed,
		styles:    DefaultStyles(dark),
		keys:      DefaultKeyMap(),
	}
}

func (m *Model) SetDark(dark bool) {
	m.styles = DefaultStyles(dark)
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.Offset--
		case key.Matches(msg, m.keys.Next):
			m.Offset++
		case key.Matches(msg, m.keys.Today):
			m.Offset = 0
		}
	}
	return m, nil
}

// Grid returns the month currently on display.
func (m Model) Grid() calendar.Grid {
	now := m.today()
	return calendar.MonthGrid(calendar.ShiftMonth(now, m.Offset), now, m.completed)
}

func (m Model) View() string {
	return Render(m.Grid(), m.styles)
}
