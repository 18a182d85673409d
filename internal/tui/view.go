package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/education"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateWelcome:
		content = m.viewWelcome()
	case constants.StateDashboard:
		content = m.viewDashboard()
	case constants.StateCalendar:
		content = m.viewCalendar()
	case constants.StateCoach:
		content = m.viewCoach()
	case constants.StateSettings:
		content = m.viewSettings()
	case constants.StateMindfulness:
		content = m.viewMindfulness()
	case constants.StateRegister, constants.StateBaseline, constants.StateLogForm, constants.StateConfirmReset:
		if m.form != nil {
			content = m.form.View()
		}
	}

	parts := []string{}
	if m.isTab() {
		parts = append(parts, m.viewTabs())
	}
	parts = append(parts, m.styles.Doc.Render(content))
	if m.status != "" {
		parts = append(parts, m.styles.Status.Render(m.status))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) isTab() bool {
	for _, s := range tabs {
		if s == m.state {
			return true
		}
	}
	return false
}

func (m Model) viewTabs() string {
	var rendered []string
	for _, s := range tabs {
		if m.state == s {
			rendered = append(rendered, m.styles.ActiveTab.Render(tabTitles[s]))
		} else {
			rendered = append(rendered, m.styles.InactiveTab.Render(tabTitles[s]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewWelcome() string {
	lines := []string{
		m.styles.Accent.Render("Body and Soul Challenge"),
		"",
		"Ten weeks. Five daily habits: sleep, weight control, exercise,",
		"peace of mind and quitting one behavior for good.",
		"",
	}
	if m.engine.Profile().IsRegistered {
		lines = append(lines, "Press enter to finish your baseline assessment.")
	} else {
		lines = append(lines, "Press enter to register.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDashboard() string {
	p := m.engine.Profile()
	week := m.engine.Week()

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(fmt.Sprintf("Hi %s! Week %d of %d", p.Name, week, constants.TotalWeeks)),
		m.styles.Muted.Render(fmt.Sprintf("%.1f points · %d badge(s)", p.Points, len(p.Badges))),
		m.progress.ViewAs(m.engine.Progress()/100),
	)

	day := m.engine.DayStatus()
	var dayLine string
	switch {
	case day.DayCompleted:
		dayLine = m.styles.Success.Render("Day complete. See you tomorrow!")
	case day.CanComplete:
		dayLine = m.styles.Accent.Render("All tasks done. Press c to complete the day.")
	default:
		dayLine = m.styles.Muted.Render(fmt.Sprintf("%d/%d tasks completed", day.CompletedTasks, len(constants.TaskKeys)))
	}

	detail := ""
	if item, ok := m.tasks.Selected(); ok {
		detail = m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Header.Render(constants.TaskTitles[item.Key]),
			"",
			m.taskDetail(item.Key),
		))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.tasks.View(), "  ", detail)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", dayLine, "", body)
}

// taskDetail describes what a task asks for this week.
func (m Model) taskDetail(k constants.TaskKey) string {
	week := m.engine.Week()
	lines := []string{challenge.TaskHint(k, week)}

	p := m.engine.Profile()
	switch k {
	case constants.TaskSleep:
		if week >= constants.SleepTargetFromWeek {
			bed, wake := p.SleepTargets()
			lines = append(lines, fmt.Sprintf("Target: %s to %s", bed, wake))
		}
	case constants.TaskWeightControl:
		if week >= 3 {
			lines = append(lines, fmt.Sprintf("Daily calorie goal: %d kcal", m.engine.DailyCalorieGoal()))
		}
	case constants.TaskExercise:
		r := m.engine.ExerciseRoutine()
		lines = append(lines,
			fmt.Sprintf("Phase %d (%s)", r.Phase, p.ExerciseTrack),
			"Cardio: "+r.Cardio,
			"Strength: "+r.Strength,
		)
	case constants.TaskPeaceOfMind:
		lines = append(lines, "Press m for a guided one-minute session.")
	case constants.TaskMakeMeQuit:
		prog := p.MakeMeQuit
		if prog.Behavior != nil {
			lines = append(lines, "Behavior: "+*prog.Behavior)
		}
		if prog.Trigger != nil {
			lines = append(lines, "Trigger: "+*prog.Trigger)
		}
		if prog.Substitution != nil {
			lines = append(lines, "Substitution: "+*prog.Substitution)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewCalendar() string {
	week := m.engine.Week()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.calendar.View(),
		"",
		m.styles.Muted.Render(fmt.Sprintf("Days completed this week: %d/%d", m.engine.CompletedDaysInWeek(week), constants.DaysPerWeek)),
	)
}

func (m Model) viewCoach() string {
	lines := []string{m.styles.Header.Render("Your coach"), "", m.chat.View(), ""}

	switch {
	case m.waiting:
		lines = append(lines, m.styles.Muted.Render("Thinking..."))
	case m.reply.Text != "":
		width := m.width - 8
		lines = append(lines, education.Render(m.reply.Text, width, m.dark))
		if m.reply.Fallback {
			lines = append(lines, m.styles.Muted.Render("(offline reply)"))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewSettings() string {
	s := m.ctx.Settings()
	onOff := func(b bool) string {
		if b {
			return m.styles.Success.Render("on")
		}
		return m.styles.Muted.Render("off")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("Settings"),
		"",
		fmt.Sprintf("Dark mode      %s   (d)", onOff(s.DarkMode)),
		fmt.Sprintf("Notifications  %s   (n)", onOff(s.NotificationsEnabled)),
		fmt.Sprintf("Timezone       %s", s.Timezone),
		fmt.Sprintf("Storage        %s", m.ctx.Store.GetConfigPath()),
		"",
		m.styles.Danger.Render("Press R to start over."),
	)
}

func (m Model) viewMindfulness() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Accent.Render("Mindfulness"),
			"",
			m.mindfulness.View(),
			"",
			m.styles.Muted.Render("[esc] Back"),
		),
	)
}
