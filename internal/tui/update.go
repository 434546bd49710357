package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/iblamekonradzuse/habit-tracker/internal/projection"
	"github.com/iblamekonradzuse/habit-tracker/internal/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.sess.Mode != session.ModeNormal {
		return m.updateForm(msg)
	}
	if m.confirmingDelete {
		return m.updateConfirmDelete(msg)
	}
	return m.updateNormal(msg)
}

func (m Model) updateNormal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.persist()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Down):
		m.sess.Next()

	case key.Matches(keyMsg, m.keys.Up):
		m.sess.Previous()

	case key.Matches(keyMsg, m.keys.NextTab):
		m.sess.NextTab()

	case key.Matches(keyMsg, m.keys.PreviousTab):
		m.sess.PreviousTab()

	case key.Matches(keyMsg, m.keys.Toggle):
		m.sess.ToggleSelected()
		m.persist()

	case key.Matches(keyMsg, m.keys.Delete):
		// The todo tab's header is not deletable, don't prompt for it.
		if entry, ok := m.sess.SelectedEntry(); ok &&
			!(entry.Kind == projection.KindCategory && m.sess.Tab == projection.TabTodo) {
			m.confirmingDelete = true
		}

	case key.Matches(keyMsg, m.keys.DayForward):
		m.sess.NextDay()
		m.sess.Rebuild()

	case key.Matches(keyMsg, m.keys.DayBack):
		m.sess.PreviousDay()
		m.sess.Rebuild()

	case key.Matches(keyMsg, m.keys.WeekForward):
		m.sess.NextWeek()

	case key.Matches(keyMsg, m.keys.WeekBack):
		m.sess.PreviousWeek()

	case key.Matches(keyMsg, m.keys.Add):
		m.sess.StartAddingHabit()
		m.form = newHabitForm(&m.sess.HabitForm)
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.AddCategory):
		m.sess.StartAddingCategory()
		m.form = newCategoryForm(&m.sess.CategoryForm)
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.AddTodo):
		m.sess.StartAddingTodo()
		m.form = newTodoForm(&m.sess.TodoForm)
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Edit):
		m.sess.StartEditingHabit()
		if m.sess.Mode == session.ModeEditingHabit {
			m.form = newHabitForm(&m.sess.HabitForm)
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Rename):
		m.sess.StartEditingCategory()
		if m.sess.Mode == session.ModeEditingCategory {
			m.form = newCategoryForm(&m.sess.CategoryForm)
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.sess.DeleteSelected()
		m.persist()
		m.confirmingDelete = false
	case "n", "N", "esc", "q":
		m.confirmingDelete = false
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.sess.Cancel()
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.commitForm()
	case huh.StateAborted:
		m.sess.Cancel()
		m.form = nil
	}
	return m, cmd
}

// commitForm applies the completed form to the session. Adding a
// category chains straight into a habit form with the category set.
func (m Model) commitForm() (tea.Model, tea.Cmd) {
	switch m.sess.Mode {
	case session.ModeAddingCategory:
		m.sess.ApplyCategoryForm()
		m.form = newHabitForm(&m.sess.HabitForm)
		return m, m.form.Init()
	case session.ModeEditingCategory:
		m.sess.ApplyCategoryForm()
	case session.ModeAddingTodo:
		m.sess.ApplyTodoForm()
	default:
		m.sess.ApplyHabitForm()
	}

	m.form = nil
	m.persist()
	return m, nil
}
