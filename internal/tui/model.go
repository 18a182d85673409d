package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/coach"
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/logger"
	"github.com/julianstephens/bodysoul/internal/tui/components/mindfulness"
	"github.com/julianstephens/bodysoul/internal/tui/components/month"
	"github.com/julianstephens/bodysoul/internal/tui/components/tasklist"
)

// tabs are the states reachable with tab and shift+tab, in order.
var tabs = []constants.SessionState{
	constants.StateDashboard,
	constants.StateCalendar,
	constants.StateCoach,
	constants.StateSettings,
}

var tabTitles = map[constants.SessionState]string{
	constants.StateDashboard: "Today",
	constants.StateCalendar:  "Calendar",
	constants.StateCoach:     "Coach",
	constants.StateSettings:  "Settings",
}

type Model struct {
	ctx    *cli.Context
	engine *challenge.Engine

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	styles        Styles
	dark          bool

	tasks       tasklist.Model
	progress    progress.Model
	calendar    month.Model
	mindfulness mindfulness.Model
	chat        textinput.Model

	form         *huh.Form
	registerForm *RegisterFormModel
	baselineForm *BaselineFormModel
	taskForm     *TaskFormModel
	confirmed    *bool

	status   string
	reply    coach.Reply
	waiting  bool
	quitting bool
	width    int
	height   int
}

func NewModel(ctx *cli.Context, engine *challenge.Engine) Model {
	dark := ctx.Settings().DarkMode

	chat := textinput.New()
	chat.Placeholder = "Ask your coach, or press enter for a pep talk"
	chat.CharLimit = 280

	m := Model{
		ctx:         ctx,
		engine:      engine,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		styles:      NewStyles(dark),
		dark:        dark,
		tasks:       tasklist.New(0, 0),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		mindfulness: mindfulness.New(),
		chat:        chat,
	}
	m.calendar = month.New(ctx.Clock(), m.dayCompleted, dark)
	m.enterScreen()

	return m
}

// enterScreen picks the state for the profile's lifecycle stage.
func (m *Model) enterScreen() {
	switch m.engine.Screen() {
	case constants.ScreenWelcome:
		m.state = constants.StateWelcome
	case constants.ScreenBaseline:
		m.openBaselineForm()
	default:
		m.state = constants.StateDashboard
		if _, err := m.engine.CheckMissedDays(); err != nil {
			logger.Warn("Failed to record visit", "error", err)
		}
		m.setStatus(m.engine.Notices()...)
		m.refresh()
	}
}

func (m Model) dayCompleted(date string) bool {
	log := m.engine.Profile().DailyLogs[date]
	return log != nil && log.DayCompleted
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateDashboard:
		keys = append(keys, m.keys.Enter, m.keys.CompleteDay, m.keys.Mindfulness)
	case constants.StateCalendar:
		cal := m.calendar.Keys()
		keys = append(keys, cal.Prev, cal.Next, cal.Today)
	case constants.StateSettings:
		keys = append(keys, m.keys.DarkMode, m.keys.Notify, m.keys.StartOver)
	case constants.StateMindfulness:
		keys = []key.Binding{m.keys.Back}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Back}

	var actions []key.Binding
	switch m.state {
	case constants.StateDashboard:
		actions = []key.Binding{m.keys.Enter, m.keys.Hide, m.keys.ShowHidden, m.keys.CompleteDay, m.keys.Mindfulness}
	case constants.StateCalendar:
		cal := m.calendar.Keys()
		actions = []key.Binding{cal.Prev, cal.Next, cal.Today}
	case constants.StateSettings:
		actions = []key.Binding{m.keys.DarkMode, m.keys.Notify, m.keys.StartOver}
	}

	return [][]key.Binding{global, actions}
}

// refresh reloads the task cards from today's log.
func (m *Model) refresh() {
	m.tasks.SetItems(tasklist.Items(m.engine.TodayLog(), m.engine.Week()))
}

func (m *Model) setStatus(lines ...string) {
	m.status = strings.Join(lines, " ")
}

// dispatch applies the events in order and reports what they changed in the status line.
func (m *Model) dispatch(events ...challenge.Event) {
	var (
		merged challenge.Outcome
		failed error
	)
	for _, ev := range events {
		out, err := m.engine.Dispatch(ev)
		merged.Awards = append(merged.Awards, out.Awards...)
		merged.Badges = append(merged.Badges, out.Badges...)
		merged.Notices = append(merged.Notices, out.Notices...)
		merged.Day = out.Day
		if err != nil {
			failed = err
			break
		}
	}

	var lines []string
	if pts := merged.Points(); pts > 0 {
		lines = append(lines, fmt.Sprintf("+%g points.", pts))
	}
	lines = append(lines, merged.Notices...)
	if failed != nil {
		lines = append(lines, "Error: "+failed.Error())
	}
	m.setStatus(lines...)

	m.ctx.NotifyOutcome(merged)
	m.refresh()
}

func (m *Model) setDark(dark bool) {
	m.dark = dark
	m.styles = NewStyles(dark)
	m.calendar.SetDark(dark)
}

func (m *Model) resize() {
	listHeight := m.height - 14
	if listHeight < 5 {
		listHeight = 5
	}
	m.tasks.SetSize(m.width/2, listHeight)
	m.help.Width = m.width
	if m.width > 0 {
		w := m.width - 8
		if w > 60 {
			w = 60
		}
		m.progress.Width = w
		m.chat.Width = w
	}
}
