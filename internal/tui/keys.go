package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iblamekonradzuse/habit-tracker/internal/config"
)

type KeyMap struct {
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Delete      key.Binding
	NextTab     key.Binding
	PreviousTab key.Binding
	Add         key.Binding
	AddCategory key.Binding
	AddTodo     key.Binding
	Edit        key.Binding
	Rename      key.Binding
	DayForward  key.Binding
	DayBack     key.Binding
	WeekForward key.Binding
	WeekBack    key.Binding
	Help        key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextTab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PreviousTab, k.Quit, k.Help},
		{k.Up, k.Down, k.DayBack, k.DayForward, k.WeekBack, k.WeekForward},
		{k.Toggle, k.Add, k.AddCategory, k.AddTodo, k.Edit, k.Rename, k.Delete},
	}
}

// NewKeyMap builds the bindings from the configured keymap so users can
// remap everything from config.toml.
func NewKeyMap(keys config.Keymap) KeyMap {
	spaceHelp := keys.Toggle
	if spaceHelp == " " {
		spaceHelp = "space"
	}

	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(keys.Quit, "ctrl+c"),
			key.WithHelp(keys.Quit, "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", keys.Up),
			key.WithHelp("↑/"+keys.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", keys.Down),
			key.WithHelp("↓/"+keys.Down, "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(keys.Toggle),
			key.WithHelp(spaceHelp, "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys(keys.Delete),
			key.WithHelp(keys.Delete, "delete"),
		),
		NextTab: key.NewBinding(
			key.WithKeys(keys.NextTab),
			key.WithHelp(keys.NextTab, "next tab"),
		),
		PreviousTab: key.NewBinding(
			key.WithKeys(keys.PreviousTab),
			key.WithHelp(keys.PreviousTab, "prev tab"),
		),
		Add: key.NewBinding(
			key.WithKeys(keys.AddHabit),
			key.WithHelp(keys.AddHabit, "add habit"),
		),
		AddCategory: key.NewBinding(
			key.WithKeys(keys.AddCategory),
			key.WithHelp(keys.AddCategory, "add category"),
		),
		AddTodo: key.NewBinding(
			key.WithKeys(keys.AddTodo),
			key.WithHelp(keys.AddTodo, "add todo"),
		),
		Edit: key.NewBinding(
			key.WithKeys(keys.Edit),
			key.WithHelp(keys.Edit, "edit habit"),
		),
		Rename: key.NewBinding(
			key.WithKeys(keys.Rename),
			key.WithHelp(keys.Rename, "rename category"),
		),
		DayForward: key.NewBinding(
			key.WithKeys(keys.DayForward),
			key.WithHelp(keys.DayForward, "next day"),
		),
		DayBack: key.NewBinding(
			key.WithKeys(keys.DayBack),
			key.WithHelp(keys.DayBack, "prev day"),
		),
		WeekForward: key.NewBinding(
			key.WithKeys(keys.WeekForward),
			key.WithHelp(keys.WeekForward, "next week"),
		),
		WeekBack: key.NewBinding(
			key.WithKeys(keys.WeekBack),
			key.WithHelp(keys.WeekBack, "prev week"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
