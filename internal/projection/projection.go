// Package projection turns the habit and todo collections into the
// ordered sequence of rows the list view displays. The projection is a
// derived snapshot: it is rebuilt after every mutation of the source
// collections or the active tab and is never mutated in place.
package projection

import (
	"sort"

	"github.com/iblamekonradzuse/habit-tracker/internal/models"
)

// Tab is a mutually exclusive filter controlling which items appear.
type Tab int

const (
	TabDaily Tab = iota
	TabWeekly
	TabMonthly
	TabAll
	TabTodo

	tabCount
)

// Next returns the tab after t, cycling.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Previous returns the tab before t, cycling.
func (t Tab) Previous() Tab {
	return (t - 1 + tabCount) % tabCount
}

func (t Tab) Title() string {
	switch t {
	case TabDaily:
		return "Daily"
	case TabWeekly:
		return "Weekly"
	case TabMonthly:
		return "Monthly"
	case TabAll:
		return "All"
	case TabTodo:
		return "Todos"
	}
	return "Unknown"
}

// Tabs lists all tabs in cycle order.
func Tabs() []Tab {
	return []Tab{TabDaily, TabWeekly, TabMonthly, TabAll, TabTodo}
}

// frequency returns the frequency this tab filters to, or false for tabs
// that do not filter by frequency.
func (t Tab) frequency() (models.Frequency, bool) {
	switch t {
	case TabDaily:
		return models.FrequencyDaily, true
	case TabWeekly:
		return models.FrequencyWeekly, true
	case TabMonthly:
		return models.FrequencyMonthly, true
	}
	return "", false
}

// Kind discriminates the variants of Entry.
type Kind int

const (
	KindCategory Kind = iota
	KindHabit
	KindTodo
)

// TodoCategory is the synthetic group header shown above todo rows.
const TodoCategory = "Todos"

// Entry is one renderable row: a category header, a habit, or a todo.
// Habit and Todo carry snapshots for display plus the index of the item
// in its source collection so actions can reach back to the owner.
type Entry struct {
	Kind     Kind
	Category string
	Habit    models.Habit
	Todo     models.Todo
	// Index of the habit/todo in its source slice. -1 for category rows.
	SourceIndex int
}

// Build produces the display sequence for the given tab: habits filtered
// by the tab's frequency (TabAll passes all), grouped by category with
// groups in ascending category-name order and members in source order.
// On the todo tab the habit groups are replaced by a single synthetic
// category followed by the todos in source order.
func Build(habits []models.Habit, todos []models.Todo, tab Tab) []Entry {
	var entries []Entry

	if tab == TabTodo {
		entries = append(entries, Entry{Kind: KindCategory, Category: TodoCategory, SourceIndex: -1})
		for i, td := range todos {
			entries = append(entries, Entry{Kind: KindTodo, Todo: td, SourceIndex: i})
		}
		return entries
	}

	freq, filtered := tab.frequency()

	groups := make(map[string][]int)
	var names []string
	for i, h := range habits {
		if filtered && h.Frequency != freq {
			continue
		}
		if _, ok := groups[h.Category]; !ok {
			names = append(names, h.Category)
		}
		groups[h.Category] = append(groups[h.Category], i)
	}
	sort.Strings(names)

	for _, name := range names {
		entries = append(entries, Entry{Kind: KindCategory, Category: name, SourceIndex: -1})
		for _, i := range groups[name] {
			entries = append(entries, Entry{Kind: KindHabit, Category: name, Habit: habits[i], SourceIndex: i})
		}
	}
	return entries
}
