package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/coach"
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/tui/components/mindfulness"
	"github.com/julianstephens/bodysoul/internal/tui/components/tasklist"
)

type coachReplyMsg struct {
	reply coach.Reply
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case coachReplyMsg:
		m.waiting = false
		m.reply = msg.reply
		return m, nil

	case mindfulness.DoneMsg:
		m.dispatch(challenge.LogPeaceOfMind{Field: challenge.FieldMindfulness, Value: "true"})
		return m, nil

	case tasklist.LogTaskMsg:
		next := m.openTaskForm(msg.Key)
		return m, next

	case tasklist.ToggleHiddenMsg:
		if msg.Hidden {
			m.dispatch(challenge.HideTask{Task: msg.Key})
		} else {
			m.dispatch(challenge.ShowTask{Task: msg.Key})
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.state == constants.StateCoach && m.chat.Focused() {
			return m.updateCoach(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			next := m.switchTab(1)
			return m, next
		case key.Matches(msg, m.keys.ShiftTab):
			next := m.switchTab(-1)
			return m, next
		}

		switch m.state {
		case constants.StateWelcome:
			return m.updateWelcome(msg)
		case constants.StateDashboard:
			return m.updateDashboard(msg)
		case constants.StateCalendar:
			var cmd tea.Cmd
			m.calendar, cmd = m.calendar.Update(msg)
			return m, cmd
		case constants.StateCoach:
			return m.updateCoach(msg)
		case constants.StateSettings:
			return m.updateSettings(msg)
		case constants.StateMindfulness:
			return m.updateMindfulness(msg)
		}
		return m, nil
	}

	// Ticks and other component messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.mindfulness, cmd = m.mindfulness.Update(msg)
	cmds = append(cmds, cmd)
	if m.state == constants.StateCoach {
		m.chat, cmd = m.chat.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// switchTab moves between the dashboard tabs. Outside of them it does nothing.
func (m *Model) switchTab(step int) tea.Cmd {
	idx := -1
	for i, s := range tabs {
		if s == m.state {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	m.state = tabs[(idx+step+len(tabs))%len(tabs)]
	if m.state == constants.StateCoach {
		return m.chat.Focus()
	}
	m.chat.Blur()
	return nil
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Enter) {
		return m, nil
	}
	if m.engine.Profile().IsRegistered {
		next := m.openBaselineForm()
		return m, next
	}
	next := m.openRegisterForm()
	return m, next
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CompleteDay):
		m.dispatch(challenge.CompleteDay{})
		return m, nil
	case key.Matches(msg, m.keys.Mindfulness):
		m.previousState = m.state
		m.state = constants.StateMindfulness
		return m, nil
	}

	var cmd tea.Cmd
	m.tasks, cmd = m.tasks.Update(msg)
	return m, cmd
}

func (m Model) updateMindfulness(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mindfulness.Stop()
		m.state = m.previousState
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if !m.mindfulness.Running() {
			next := m.mindfulness.Start()
			return m, next
		}
	}
	return m, nil
}

func (m Model) updateCoach(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		next := m.switchTab(1)
		return m, next
	case key.Matches(msg, m.keys.ShiftTab):
		next := m.switchTab(-1)
		return m, next
	case key.Matches(msg, m.keys.Back):
		m.chat.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if !m.chat.Focused() {
			next := m.chat.Focus()
			return m, next
		}
		if m.waiting {
			return m, nil
		}
		text := strings.TrimSpace(m.chat.Value())
		m.chat.SetValue("")
		next := m.askCoach(text)
		return m, next
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// askCoach sends a chat message, or asks for motivation when text is empty.
func (m *Model) askCoach(text string) tea.Cmd {
	if m.ctx.Coach == nil {
		m.setStatus("The coach is not configured.")
		return nil
	}
	m.waiting = true

	client := m.ctx.Coach
	req := coach.NewRequest(m.engine.Profile(), text, coach.AreaGeneral)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.CoachTimeout)
		defer cancel()
		if text == "" {
			return coachReplyMsg{reply: client.Motivate(ctx, req)}
		}
		return coachReplyMsg{reply: client.Chat(ctx, req)}
	}
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.DarkMode):
		settings := m.ctx.Settings()
		settings.DarkMode = !settings.DarkMode
		if err := m.ctx.Store.SaveSettings(settings); err != nil {
			m.setStatus("Error: " + err.Error())
			return m, nil
		}
		m.setDark(settings.DarkMode)
		m.setStatus("Settings saved.")
	case key.Matches(msg, m.keys.Notify):
		settings := m.ctx.Settings()
		settings.NotificationsEnabled = !settings.NotificationsEnabled
		if err := m.ctx.Store.SaveSettings(settings); err != nil {
			m.setStatus("Error: " + err.Error())
			return m, nil
		}
		m.setStatus("Settings saved.")
	case key.Matches(msg, m.keys.StartOver):
		next := m.openConfirmReset()
		return m, next
	}
	return m, nil
}

func (m *Model) openForm(state constants.SessionState, form *huh.Form) tea.Cmd {
	if state != constants.StateRegister && state != constants.StateBaseline {
		m.previousState = m.state
	}
	m.state = state
	m.form = form
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width - 4)
	}
	return m.form.Init()
}

func (m *Model) openRegisterForm() tea.Cmd {
	if m.registerForm == nil {
		m.registerForm = &RegisterFormModel{Gender: "female"}
	}
	return m.openForm(constants.StateRegister, newRegisterForm(m.registerForm, m.dark))
}

func (m *Model) openBaselineForm() tea.Cmd {
	if m.baselineForm == nil {
		m.baselineForm = &BaselineFormModel{Track: string(constants.TrackBeginner)}
	}
	return m.openForm(constants.StateBaseline, newBaselineForm(m.baselineForm, m.dark))
}

func (m *Model) openTaskForm(k constants.TaskKey) tea.Cmd {
	week := m.engine.Week()
	m.taskForm = NewTaskFormModel(k, m.engine.TodayLog(), m.engine.Profile(), week)
	return m.openForm(constants.StateLogForm, m.taskForm.Form(m.dark, m.taskDetail(k)))
}

func (m *Model) openConfirmReset() tea.Cmd {
	m.confirmed = new(bool)
	form := newConfirmForm(
		"Start over?",
		"This deletes your profile, logs, points and badges. Settings are kept.",
		m.confirmed,
		m.dark,
	)
	return m.openForm(constants.StateConfirmReset, form)
}

func (m *Model) closeForm() {
	m.form = nil
	m.taskForm = nil
	switch m.state {
	case constants.StateRegister, constants.StateBaseline:
		m.state = constants.StateWelcome
	default:
		m.state = m.previousState
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.closeForm()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		next := m.submitForm()
		return m, next
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, cmd
}

// submitForm applies the completed form of the current state.
func (m *Model) submitForm() tea.Cmd {
	switch m.state {
	case constants.StateRegister:
		in, err := m.registerForm.Input()
		if err == nil {
			err = m.engine.Register(in)
		}
		if err != nil {
			m.setStatus("Error: " + err.Error())
			return m.openRegisterForm()
		}
		m.setStatus("Welcome, " + in.Name + "!")
		return m.openBaselineForm()

	case constants.StateBaseline:
		in, err := m.baselineForm.Input()
		if err == nil {
			err = m.engine.CompleteBaseline(in)
		}
		if err != nil {
			m.setStatus("Error: " + err.Error())
			return m.openBaselineForm()
		}
		m.form = nil
		m.registerForm, m.baselineForm = nil, nil
		m.enterScreen()
		m.setStatus("Your challenge starts today. Good luck!")
		return nil

	case constants.StateLogForm:
		events := m.taskForm.Events()
		m.closeForm()
		if len(events) == 0 {
			m.setStatus("Nothing changed.")
			return nil
		}
		m.dispatch(events...)
		return nil

	case constants.StateConfirmReset:
		confirmed := m.confirmed != nil && *m.confirmed
		m.closeForm()
		if !confirmed {
			return nil
		}
		m.ctx.PerformAutomaticBackup()
		if err := m.engine.StartOver(); err != nil {
			m.setStatus("Error: " + err.Error())
			return nil
		}
		m.reply = coach.Reply{}
		m.state = constants.StateWelcome
		m.setStatus("Profile deleted. Starting over.")
		return nil
	}

	m.closeForm()
	return nil
}
