package tasklist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
)

// LogTaskMsg asks the parent to open the log form of a task.
type LogTaskMsg struct {
	Key constants.TaskKey
}

// ToggleHiddenMsg asks the parent to hide or show a task card.
type ToggleHiddenMsg struct {
	Key    constants.TaskKey
	Hidden bool
}

type Item struct {
	Key    constants.TaskKey
	Status models.TaskStatus
	Hint   string
}

func (i Item) Title() string {
	mark := "○ "
	if i.Status.Completed {
		mark = "✓ "
	}
	title := mark + constants.TaskTitles[i.Key]
	if i.Status.SwipedHidden {
		title += " (hidden)"
	}
	return title
}

func (i Item) Description() string {
	if i.Status.Completed {
		return "Done for today"
	}
	return i.Hint
}

func (i Item) FilterValue() string { return constants.TaskTitles[i.Key] }

type KeyMap struct {
	Log        key.Binding
	Hide       key.Binding
	ShowHidden key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Log: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log"),
		),
		Hide: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "hide/show"),
		),
		ShowHidden: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all cards"),
		),
	}
}

// Model lists today's five tasks. Hidden cards are left out unless showHidden is on.
type Model struct {
	list       list.Model
	keys       KeyMap
	all        []Item
	showHidden bool
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return Model{list: l, keys: DefaultKeyMap()}
}

// Items builds the list items from today's log.
func Items(log *models.DailyLog, week int) []Item {
	items := make([]Item, 0, len(constants.TaskKeys))
	for _, key := range constants.TaskKeys {
		items = append(items, Item{
			Key:    key,
			Status: log.Status(key),
			Hint:   challenge.TaskHint(key, week),
		})
	}
	return items
}

func (m *Model) SetItems(items []Item) {
	m.all = items
	m.refresh()
}

func (m *Model) refresh() {
	visible := make([]list.Item, 0, len(m.all))
	for _, it := range m.all {
		if it.Status.SwipedHidden && !m.showHidden {
			continue
		}
		visible = append(visible, it)
	}
	m.list.SetItems(visible)
}

// Selected returns the highlighted task.
func (m Model) Selected() (Item, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i, ok
}

func (m Model) ShowingHidden() bool {
	return m.showHidden
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Log):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return LogTaskMsg{Key: i.Key} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Hide):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleHiddenMsg{Key: i.Key, Hidden: !i.Status.SwipedHidden} }
			}
			return m, nil
		case key.Matches(msg, m.keys.ShowHidden):
			m.showHidden = !m.showHidden
			m.refresh()
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  All cards are hidden.\n  Press 'a' to show them."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
