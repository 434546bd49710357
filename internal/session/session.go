// Package session owns the habit and todo collections for the lifetime
// of a run and drives the navigation state machine over their projected
// list. Every operation is a pure in-memory state transition: invalid
// selections are no-ops, never errors, and the projection is rebuilt
// after every mutation so navigation never indexes into a stale list.
package session

import (
	"time"

	"github.com/iblamekonradzuse/habit-tracker/internal/models"
	"github.com/iblamekonradzuse/habit-tracker/internal/projection"
)

// InputMode is the routing state for keyboard input. The session only
// tracks the mode and the form buffers; interpreting keystrokes belongs
// to the input layer.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeAddingCategory
	ModeAddingHabit
	ModeAddingTodo
	ModeEditingCategory
	ModeEditingHabit
)

// HabitForm is the text buffer for adding or editing a habit.
type HabitForm struct {
	Name      string
	Category  string
	Frequency models.Frequency
}

// TodoForm is the text buffer for adding a todo.
type TodoForm struct {
	Description string
}

// CategoryForm is the text buffer for naming or renaming a category.
type CategoryForm struct {
	Name string
}

// Session is the single owner of the collections and all derived view
// state. It is not safe for concurrent use; the application runs one
// synchronous event loop over it.
type Session struct {
	Habits []models.Habit
	Todos  []models.Todo

	// Date is the reference date completions are toggled against.
	Date time.Time
	// WeekOffset shifts the displayed week of the completion grid.
	WeekOffset int

	Tab      projection.Tab
	Mode     InputMode
	Selected int // index into the projection, -1 for none

	HabitForm    HabitForm
	TodoForm     TodoForm
	CategoryForm CategoryForm

	entries []projection.Entry
}

func New(habits []models.Habit, todos []models.Todo, date time.Time) *Session {
	s := &Session{
		Habits:   habits,
		Todos:    todos,
		Date:     date,
		Tab:      projection.TabAll,
		Selected: -1,
	}
	s.Rebuild()
	return s
}

// Entries returns the current projection. The slice is only valid until
// the next mutation.
func (s *Session) Entries() []projection.Entry {
	return s.entries
}

// Total is the length of the current projection.
func (s *Session) Total() int {
	return len(s.entries)
}

// Rebuild recomputes the projection from the collections and the active
// tab, then clamps the selection into the new range.
func (s *Session) Rebuild() {
	s.entries = projection.Build(s.Habits, s.Todos, s.Tab)
	if len(s.entries) == 0 {
		s.Selected = -1
	} else if s.Selected >= len(s.entries) {
		s.Selected = len(s.entries) - 1
	}
}

// Next advances the selection, wrapping past the end. No-op on an empty
// projection.
func (s *Session) Next() {
	if len(s.entries) == 0 {
		return
	}
	if s.Selected < 0 {
		s.Selected = 0
		return
	}
	s.Selected = (s.Selected + 1) % len(s.entries)
}

// Previous retreats the selection, wrapping from 0 to the last index.
// No-op on an empty projection.
func (s *Session) Previous() {
	if len(s.entries) == 0 {
		return
	}
	if s.Selected <= 0 {
		if s.Selected < 0 {
			s.Selected = 0
		} else {
			s.Selected = len(s.entries) - 1
		}
		return
	}
	s.Selected--
}

// SelectedEntry returns the entry under the cursor, if any.
func (s *Session) SelectedEntry() (projection.Entry, bool) {
	if s.Selected < 0 || s.Selected >= len(s.entries) {
		return projection.Entry{}, false
	}
	return s.entries[s.Selected], true
}

// categoryMembers returns the source indexes of the habits grouped under
// the category entry at the given projection index.
func (s *Session) categoryMembers(idx int) []int {
	var members []int
	for i := idx + 1; i < len(s.entries); i++ {
		if s.entries[i].Kind != projection.KindHabit {
			break
		}
		members = append(members, s.entries[i].SourceIndex)
	}
	return members
}

// ToggleSelected toggles completion for the entry under the cursor on
// the reference date. A category entry toggles its whole group as one
// batch: if every member is already completed the batch unmarks, else it
// marks. No-op when nothing is selected.
func (s *Session) ToggleSelected() {
	entry, ok := s.SelectedEntry()
	if !ok {
		return
	}

	switch entry.Kind {
	case projection.KindCategory:
		// The todo tab's only category entry is the synthetic header.
		if s.Tab == projection.TabTodo {
			return
		}
		members := s.categoryMembers(s.Selected)
		allDone := len(members) > 0
		for _, i := range members {
			if !s.Habits[i].IsCompleted(s.Date) {
				allDone = false
				break
			}
		}
		for _, i := range members {
			if allDone {
				s.Habits[i].UnmarkCompleted(s.Date)
			} else {
				s.Habits[i].MarkCompleted(s.Date)
			}
		}
	case projection.KindHabit:
		h := &s.Habits[entry.SourceIndex]
		if h.IsCompleted(s.Date) {
			h.UnmarkCompleted(s.Date)
		} else {
			h.MarkCompleted(s.Date)
		}
	case projection.KindTodo:
		s.Todos[entry.SourceIndex].ToggleCompletion()
	}
	s.Rebuild()
}

// DeleteSelected removes the habit, todo, or whole category group under
// the cursor and clamps the selection. No-op when nothing is selected.
func (s *Session) DeleteSelected() {
	entry, ok := s.SelectedEntry()
	if !ok {
		return
	}

	switch entry.Kind {
	case projection.KindCategory:
		if s.Tab == projection.TabTodo {
			return
		}
		members := s.categoryMembers(s.Selected)
		// Remove from the back so earlier indexes stay valid.
		for i := len(members) - 1; i >= 0; i-- {
			s.Habits = append(s.Habits[:members[i]], s.Habits[members[i]+1:]...)
		}
	case projection.KindHabit:
		i := entry.SourceIndex
		s.Habits = append(s.Habits[:i], s.Habits[i+1:]...)
	case projection.KindTodo:
		i := entry.SourceIndex
		s.Todos = append(s.Todos[:i], s.Todos[i+1:]...)
	}
	s.Rebuild()
}

// Tab, date and week navigation.

func (s *Session) NextTab() {
	s.Tab = s.Tab.Next()
	s.Rebuild()
}

func (s *Session) PreviousTab() {
	s.Tab = s.Tab.Previous()
	s.Rebuild()
}

func (s *Session) NextDay() {
	s.Date = s.Date.AddDate(0, 0, 1)
}

func (s *Session) PreviousDay() {
	s.Date = s.Date.AddDate(0, 0, -1)
}

func (s *Session) NextWeek() {
	s.WeekOffset++
}

func (s *Session) PreviousWeek() {
	s.WeekOffset--
}

// WeekStart returns the Monday of the displayed grid week: the week of
// the reference date shifted by WeekOffset.
func (s *Session) WeekStart() time.Time {
	daysSinceMonday := (int(s.Date.Weekday()) + 6) % 7
	monday := s.Date.AddDate(0, 0, -daysSinceMonday)
	return monday.AddDate(0, 0, 7*s.WeekOffset)
}

// Input-mode transitions. The caller routes keystrokes into the form
// buffers while a non-normal mode is active and commits with the Apply*
// methods below.

func (s *Session) StartAddingHabit() {
	s.HabitForm = HabitForm{Frequency: models.FrequencyDaily}
	if entry, ok := s.SelectedEntry(); ok && entry.Kind != projection.KindTodo && s.Tab != projection.TabTodo {
		s.HabitForm.Category = entry.Category
	}
	s.Mode = ModeAddingHabit
}

func (s *Session) StartAddingTodo() {
	s.TodoForm = TodoForm{}
	s.Mode = ModeAddingTodo
}

func (s *Session) StartAddingCategory() {
	s.CategoryForm = CategoryForm{}
	s.Mode = ModeAddingCategory
}

// StartEditingHabit enters habit editing for the selected habit entry.
// No-op when the cursor is not on a habit.
func (s *Session) StartEditingHabit() {
	entry, ok := s.SelectedEntry()
	if !ok || entry.Kind != projection.KindHabit {
		return
	}
	h := s.Habits[entry.SourceIndex]
	s.HabitForm = HabitForm{Name: h.Name, Category: h.Category, Frequency: h.Frequency}
	s.Mode = ModeEditingHabit
}

// StartEditingCategory enters category renaming for the selected
// category entry. No-op otherwise.
func (s *Session) StartEditingCategory() {
	entry, ok := s.SelectedEntry()
	if !ok || entry.Kind != projection.KindCategory || s.Tab == projection.TabTodo {
		return
	}
	s.CategoryForm = CategoryForm{Name: entry.Category}
	s.Mode = ModeEditingCategory
}

// Cancel abandons any in-progress form and returns to normal mode.
func (s *Session) Cancel() {
	s.Mode = ModeNormal
}

// ApplyHabitForm commits the habit form: a new habit in adding mode, an
// in-place edit of the selected habit in editing mode.
func (s *Session) ApplyHabitForm() {
	switch s.Mode {
	case ModeAddingHabit:
		s.Habits = append(s.Habits, models.NewHabit(s.HabitForm.Name, s.HabitForm.Category, s.HabitForm.Frequency))
	case ModeEditingHabit:
		entry, ok := s.SelectedEntry()
		if ok && entry.Kind == projection.KindHabit {
			h := &s.Habits[entry.SourceIndex]
			h.Name = s.HabitForm.Name
			h.Category = s.HabitForm.Category
			h.Frequency = s.HabitForm.Frequency
		}
	default:
		return
	}
	s.Mode = ModeNormal
	s.Rebuild()
}

// ApplyTodoForm commits the todo form.
func (s *Session) ApplyTodoForm() {
	if s.Mode != ModeAddingTodo {
		return
	}
	s.Todos = append(s.Todos, models.NewTodo(s.TodoForm.Description))
	s.Mode = ModeNormal
	s.Rebuild()
}

// ApplyCategoryForm commits the category form. Adding a category flows
// into habit entry with the category pre-filled (a category only exists
// through its habits); editing renames every habit in the selected
// group.
func (s *Session) ApplyCategoryForm() {
	switch s.Mode {
	case ModeAddingCategory:
		s.HabitForm = HabitForm{Category: s.CategoryForm.Name, Frequency: models.FrequencyDaily}
		s.Mode = ModeAddingHabit
		return
	case ModeEditingCategory:
		entry, ok := s.SelectedEntry()
		if ok && entry.Kind == projection.KindCategory {
			for _, i := range s.categoryMembers(s.Selected) {
				s.Habits[i].Category = s.CategoryForm.Name
			}
		}
	default:
		return
	}
	s.Mode = ModeNormal
	s.Rebuild()
}
