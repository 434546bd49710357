package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iblamekonradzuse/habit-tracker/internal/models"
	"github.com/iblamekonradzuse/habit-tracker/internal/projection"
	"github.com/iblamekonradzuse/habit-tracker/internal/session"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.sess.Mode != session.ModeNormal && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	if m.confirmingDelete {
		return m.viewConfirmDelete()
	}

	sections := []string{
		m.viewHeader(),
		m.viewTabs(),
		m.viewEntries(),
	}
	if m.statusMsg != "" {
		sections = append(sections, dangerStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHeader() string {
	weekStart := m.sess.WeekStart()
	weekEnd := weekStart.AddDate(0, 0, 6)
	return headerStyle.Render(m.sess.Date.Format("Monday, Jan 2 2006")) +
		mutedStyle.Render(fmt.Sprintf("  week %s – %s", weekStart.Format("Jan 2"), weekEnd.Format("Jan 2")))
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, tab := range projection.Tabs() {
		if tab == m.sess.Tab {
			tabs = append(tabs, activeTabStyle.Render(tab.Title()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewEntries() string {
	entries := m.sess.Entries()
	if len(entries) == 0 {
		return mutedStyle.Render("\nNothing here yet. Press 'a' to add a habit or 't' for a todo.\n")
	}

	var b strings.Builder
	for i, entry := range entries {
		cursor := "  "
		if i == m.sess.Selected {
			cursor = "> "
		}

		var line string
		switch entry.Kind {
		case projection.KindCategory:
			line = categoryStyle.Render(entry.Category)
		case projection.KindHabit:
			line = m.renderHabit(m.sess.Habits[entry.SourceIndex])
		case projection.KindTodo:
			line = m.renderTodo(m.sess.Todos[entry.SourceIndex])
		}

		if i == m.sess.Selected {
			b.WriteString(selectedStyle.Render(cursor + line))
		} else {
			b.WriteString(cursor + line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderHabit(h models.Habit) string {
	mark := "○"
	style := pendingStyle
	if h.IsCompleted(m.sess.Date) {
		mark = "✓"
		style = doneStyle
	}

	return fmt.Sprintf("%s %s  %s  %s",
		style.Render(mark),
		style.Render(h.Name),
		mutedStyle.Render(m.renderWeekStrip(h)),
		mutedStyle.Render(fmt.Sprintf("streak %d", h.Streak(m.sess.Date))))
}

// renderWeekStrip draws one cell per day of the displayed week.
func (m Model) renderWeekStrip(h models.Habit) string {
	var cells [7]byte
	day := m.sess.WeekStart()
	for i := 0; i < 7; i++ {
		if h.IsCompleted(day) {
			cells[i] = 'x'
		} else {
			cells[i] = '.'
		}
		day = day.AddDate(0, 0, 1)
	}
	return "[" + string(cells[:]) + "]"
}

func (m Model) renderTodo(t models.Todo) string {
	if t.Completed {
		return doneStyle.Render("✓ " + t.Description)
	}
	return pendingStyle.Render("○ " + t.Description)
}

func (m Model) viewConfirmDelete() string {
	prompt := "Are you sure you want to delete this item?"
	if entry, ok := m.sess.SelectedEntry(); ok {
		switch entry.Kind {
		case projection.KindCategory:
			prompt = fmt.Sprintf("Delete category %q and all its habits?", entry.Category)
		case projection.KindHabit:
			prompt = fmt.Sprintf("Delete habit %q?", m.sess.Habits[entry.SourceIndex].Name)
		case projection.KindTodo:
			prompt = fmt.Sprintf("Delete todo %q?", m.sess.Todos[entry.SourceIndex].Description)
		}
	}

	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
