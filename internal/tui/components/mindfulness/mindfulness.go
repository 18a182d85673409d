// Package mindfulness is the guided 60-second session of the peace of mind task.
package mindfulness

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/bodysoul/internal/constants"
)

// DoneMsg is sent once when the countdown reaches zero.
type DoneMsg struct{}

var prompts = []string{
	"Sit comfortably and close your eyes.",
	"Breathe in for four counts...",
	"...and out for four counts.",
	"Notice the sounds around you without judging them.",
	"Notice where your body touches the chair.",
	"Let each thought pass like a cloud.",
}

type Model struct {
	timer    timer.Model
	duration time.Duration
	running  bool
	done     bool
}

func New() Model {
	return NewWithDuration(constants.MindfulnessDuration)
}

func NewWithDuration(d time.Duration) Model {
	return Model{
		timer:    timer.NewWithInterval(d, constants.MindfulnessInterval),
		duration: d,
	}
}

// Start resets and starts the countdown.
func (m *Model) Start() tea.Cmd {
	m.timer = timer.NewWithInterval(m.duration, constants.MindfulnessInterval)
	m.running = true
	m.done = false
	return m.timer.Init()
}

// Stop abandons the session. Ticks still in flight are ignored.
func (m *Model) Stop() {
	m.running = false
}

func (m Model) Running() bool { return m.running }

func (m Model) Done() bool { return m.done }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.running {
		return m, nil
	}

	switch msg := msg.(type) {
	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd
	case timer.TimeoutMsg:
		if msg.ID != m.timer.ID() {
			return m, nil
		}
		m.running = false
		m.done = true
		return m, func() tea.Msg { return DoneMsg{} }
	}
	return m, nil
}

// Prompt returns the guidance line for the elapsed time.
func (m Model) Prompt() string {
	elapsed := m.duration - m.timer.Timeout
	step := m.duration / time.Duration(len(prompts))
	if step <= 0 {
		return prompts[0]
	}
	idx := int(elapsed / step)
	if idx >= len(prompts) {
		idx = len(prompts) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return prompts[idx]
}

func (m Model) View() string {
	switch {
	case m.done:
		return "Well done. Your mindfulness session is logged."
	case !m.running:
		return fmt.Sprintf("A %s mindfulness session. Press enter to begin.", m.duration)
	default:
		return fmt.Sprintf("%s\n\n%s remaining", m.Prompt(), m.timer.View())
	}
}
