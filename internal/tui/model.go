package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/iblamekonradzuse/habit-tracker/internal/config"
	"github.com/iblamekonradzuse/habit-tracker/internal/projection"
	"github.com/iblamekonradzuse/habit-tracker/internal/session"
	"github.com/iblamekonradzuse/habit-tracker/internal/storage"
)

type Model struct {
	store storage.Provider
	sess  *session.Session
	keys  KeyMap
	help  help.Model

	form *huh.Form

	confirmingDelete bool
	statusMsg        string
	quitting         bool
	width            int
	height           int
}

func NewModel(store storage.Provider, cfg config.Config) (Model, error) {
	habits, err := store.LoadHabits()
	if err != nil {
		return Model{}, err
	}
	todos, err := store.LoadTodos()
	if err != nil {
		return Model{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	sess := session.New(habits, todos, today)
	sess.Tab = projection.TabDaily
	sess.Rebuild()

	return Model{
		store: store,
		sess:  sess,
		keys:  NewKeyMap(cfg.Keys),
		help:  help.New(),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Toggle, m.keys.Add, m.keys.NextTab, m.keys.Help, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.NextTab, m.keys.PreviousTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.DayBack, m.keys.DayForward, m.keys.WeekBack, m.keys.WeekForward}
	actions := []key.Binding{m.keys.Toggle, m.keys.Add, m.keys.AddCategory, m.keys.AddTodo, m.keys.Edit, m.keys.Rename, m.keys.Delete}
	return [][]key.Binding{global, navigation, actions}
}

// persist writes both collections back through the storage provider.
// Errors surface in the status line instead of crashing the TUI.
func (m *Model) persist() {
	if err := m.store.SaveHabits(m.sess.Habits); err != nil {
		m.statusMsg = "⚠ failed to save habits: " + err.Error()
		return
	}
	if err := m.store.SaveTodos(m.sess.Todos); err != nil {
		m.statusMsg = "⚠ failed to save todos: " + err.Error()
		return
	}
	m.statusMsg = ""
}
