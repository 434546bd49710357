package session

import (
	"testing"
	"time"

	"github.com/iblamekonradzuse/habit-tracker/internal/models"
	"github.com/iblamekonradzuse/habit-tracker/internal/projection"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestSession() *Session {
	habits := []models.Habit{
		models.NewHabit("Stretch", "Health", models.FrequencyDaily),
		models.NewHabit("Run", "Health", models.FrequencyDaily),
	}
	todos := []models.Todo{models.NewTodo("Buy milk")}
	return New(habits, todos, day(2024, time.March, 15))
}

func TestNextWrapsAround(t *testing.T) {
	s := New([]models.Habit{
		models.NewHabit("A", "One", models.FrequencyDaily),
		models.NewHabit("B", "Two", models.FrequencyDaily),
	}, nil, day(2024, time.March, 15))
	// Projection: One, A, Two, B.
	if s.Total() != 4 {
		t.Fatalf("expected 4 entries, got %d", s.Total())
	}

	s.Next()
	if s.Selected != 0 {
		t.Errorf("first next should select 0, got %d", s.Selected)
	}
	for i := 0; i < 3; i++ {
		s.Next()
	}
	if s.Selected != 3 {
		t.Errorf("expected selection 3, got %d", s.Selected)
	}
	s.Next()
	if s.Selected != 0 {
		t.Errorf("next from last index should wrap to 0, got %d", s.Selected)
	}
}

func TestNextWrapThreeItems(t *testing.T) {
	s := New([]models.Habit{
		models.NewHabit("A", "One", models.FrequencyDaily),
		models.NewHabit("B", "One", models.FrequencyDaily),
	}, nil, day(2024, time.March, 15))
	if s.Total() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Total())
	}

	s.Selected = 2
	s.Next()
	if s.Selected != 0 {
		t.Errorf("next from index 2 of 3 should yield 0, got %d", s.Selected)
	}

	s.Selected = 0
	s.Previous()
	if s.Selected != 2 {
		t.Errorf("previous from index 0 of 3 should yield 2, got %d", s.Selected)
	}
}

func TestPreviousFromNoneSelectsFirst(t *testing.T) {
	s := newTestSession()
	if s.Selected != -1 {
		t.Fatalf("fresh session should have no selection, got %d", s.Selected)
	}
	s.Previous()
	if s.Selected != 0 {
		t.Errorf("previous from none should select 0, got %d", s.Selected)
	}
}

func TestNavigationOnEmptyProjection(t *testing.T) {
	s := New(nil, nil, day(2024, time.March, 15))
	s.Tab = projection.TabAll
	s.Rebuild()

	s.Next()
	s.Previous()
	s.ToggleSelected()
	s.DeleteSelected()
	if s.Selected != -1 {
		t.Errorf("operations on empty projection should leave selection none, got %d", s.Selected)
	}
}

func TestToggleHabit(t *testing.T) {
	s := newTestSession()
	s.Selected = 1 // first habit under "Health"
	entry, ok := s.SelectedEntry()
	if !ok || entry.Kind != projection.KindHabit {
		t.Fatalf("expected habit entry at index 1, got %+v", entry)
	}

	s.ToggleSelected()
	if !s.Habits[entry.SourceIndex].IsCompleted(s.Date) {
		t.Error("toggle should mark the habit completed")
	}
	s.ToggleSelected()
	if s.Habits[entry.SourceIndex].IsCompleted(s.Date) {
		t.Error("second toggle should unmark the habit")
	}
}

func TestToggleCategoryBatch(t *testing.T) {
	s := newTestSession()
	s.Selected = 0 // "Health" category header
	s.Habits[0].MarkCompleted(s.Date)

	// Mixed state: batch marks everything.
	s.ToggleSelected()
	for i := range s.Habits {
		if !s.Habits[i].IsCompleted(s.Date) {
			t.Fatalf("habit %d should be completed after batch mark", i)
		}
	}

	// All complete: batch unmarks everything.
	s.ToggleSelected()
	for i := range s.Habits {
		if s.Habits[i].IsCompleted(s.Date) {
			t.Fatalf("habit %d should be uncompleted after batch unmark", i)
		}
	}
}

func TestCategoryNamedTodosActsLikeAnyGroup(t *testing.T) {
	s := New([]models.Habit{
		models.NewHabit("Inbox zero", "Todos", models.FrequencyDaily),
	}, nil, day(2024, time.March, 15))
	s.Selected = 0 // user's own "Todos" category header

	s.ToggleSelected()
	if !s.Habits[0].IsCompleted(s.Date) {
		t.Error("batch toggle should mark the member habit")
	}

	s.StartEditingCategory()
	if s.Mode != ModeEditingCategory {
		t.Errorf("category named like the todo header should still be renamable, got mode %d", s.Mode)
	}
	s.Cancel()

	s.DeleteSelected()
	if len(s.Habits) != 0 {
		t.Errorf("delete should remove the group, got %d habits", len(s.Habits))
	}
}

func TestSyntheticTodoHeaderIsInert(t *testing.T) {
	s := New(nil, []models.Todo{models.NewTodo("Buy milk")}, day(2024, time.March, 15))
	s.Tab = projection.TabTodo
	s.Rebuild()
	s.Selected = 0 // synthetic "Todos" header

	s.ToggleSelected()
	if s.Todos[0].Completed {
		t.Error("toggling the todo header should not touch todos")
	}
	s.StartEditingCategory()
	if s.Mode != ModeNormal {
		t.Errorf("the todo header should not be renamable, got mode %d", s.Mode)
	}
	s.DeleteSelected()
	if len(s.Todos) != 1 {
		t.Errorf("deleting the todo header should be a no-op, got %d todos", len(s.Todos))
	}
}

func TestToggleTodo(t *testing.T) {
	s := newTestSession()
	s.Tab = projection.TabTodo
	s.Rebuild()
	s.Selected = 1 // todo under the "Todos" header

	s.ToggleSelected()
	if !s.Todos[0].Completed {
		t.Error("toggle should complete the todo")
	}
}

func TestDeleteHabitClampsSelection(t *testing.T) {
	s := New([]models.Habit{
		models.NewHabit("A", "One", models.FrequencyDaily),
		models.NewHabit("B", "Two", models.FrequencyDaily),
	}, nil, day(2024, time.March, 15))
	s.Selected = 3 // habit "B", last entry

	s.DeleteSelected()
	if len(s.Habits) != 1 {
		t.Fatalf("expected 1 habit left, got %d", len(s.Habits))
	}
	if s.Total() != 2 {
		t.Fatalf("expected 2 entries left, got %d", s.Total())
	}
	if s.Selected != 1 {
		t.Errorf("selection should clamp to last entry 1, got %d", s.Selected)
	}
}

func TestDeleteLastItemClearsSelection(t *testing.T) {
	s := New(nil, []models.Todo{models.NewTodo("only")}, day(2024, time.March, 15))
	s.Tab = projection.TabTodo
	s.Rebuild()
	s.Selected = 1

	s.DeleteSelected()
	if len(s.Todos) != 0 {
		t.Fatalf("expected no todos left, got %d", len(s.Todos))
	}
	// Only the synthetic header remains, selection clamps onto it.
	if s.Total() != 1 || s.Selected != 0 {
		t.Errorf("expected header-only projection with selection 0, got total=%d selected=%d", s.Total(), s.Selected)
	}

	s.Tab = projection.TabAll
	s.Rebuild()
	if s.Total() != 0 {
		t.Fatalf("expected empty projection, got %d entries", s.Total())
	}
	if s.Selected != -1 {
		t.Errorf("empty projection should clear selection, got %d", s.Selected)
	}
}

func TestDeleteCategoryRemovesGroup(t *testing.T) {
	s := New([]models.Habit{
		models.NewHabit("A", "One", models.FrequencyDaily),
		models.NewHabit("B", "Two", models.FrequencyDaily),
		models.NewHabit("C", "One", models.FrequencyDaily),
	}, nil, day(2024, time.March, 15))
	s.Selected = 0 // category "One" with members A and C

	s.DeleteSelected()
	if len(s.Habits) != 1 {
		t.Fatalf("expected 1 habit left, got %d", len(s.Habits))
	}
	if s.Habits[0].Name != "B" {
		t.Errorf("expected habit B to survive, got %q", s.Habits[0].Name)
	}
}

func TestTabSwitchRebuildsProjection(t *testing.T) {
	s := New([]models.Habit{
		models.NewHabit("A", "One", models.FrequencyDaily),
		models.NewHabit("B", "One", models.FrequencyWeekly),
	}, nil, day(2024, time.March, 15))
	if s.Total() != 3 {
		t.Fatalf("expected 3 entries on All, got %d", s.Total())
	}

	s.Tab = projection.TabDaily
	s.Rebuild()
	if s.Total() != 2 {
		t.Errorf("expected 2 entries on Daily, got %d", s.Total())
	}
}

func TestAddHabitFlow(t *testing.T) {
	s := New(nil, nil, day(2024, time.March, 15))
	s.StartAddingHabit()
	if s.Mode != ModeAddingHabit {
		t.Fatalf("expected adding-habit mode, got %d", s.Mode)
	}
	s.HabitForm.Name = "Read"
	s.HabitForm.Category = "Learning"
	s.HabitForm.Frequency = models.FrequencyWeekly

	s.ApplyHabitForm()
	if s.Mode != ModeNormal {
		t.Errorf("apply should return to normal mode, got %d", s.Mode)
	}
	if len(s.Habits) != 1 || s.Habits[0].Name != "Read" || s.Habits[0].Frequency != models.FrequencyWeekly {
		t.Errorf("unexpected habits after add: %+v", s.Habits)
	}
	if s.Total() != 2 {
		t.Errorf("projection should include new category and habit, got %d entries", s.Total())
	}
}

func TestAddCategoryFlowsIntoHabitForm(t *testing.T) {
	s := New(nil, nil, day(2024, time.March, 15))
	s.StartAddingCategory()
	s.CategoryForm.Name = "Fitness"

	s.ApplyCategoryForm()
	if s.Mode != ModeAddingHabit {
		t.Fatalf("category form should flow into habit entry, got mode %d", s.Mode)
	}
	if s.HabitForm.Category != "Fitness" {
		t.Errorf("habit form should carry the new category, got %q", s.HabitForm.Category)
	}
}

func TestEditHabit(t *testing.T) {
	s := newTestSession()
	s.Selected = 1
	s.StartEditingHabit()
	if s.Mode != ModeEditingHabit {
		t.Fatalf("expected editing-habit mode, got %d", s.Mode)
	}
	if s.HabitForm.Name != "Stretch" {
		t.Fatalf("form should pre-fill from the habit, got %q", s.HabitForm.Name)
	}

	s.HabitForm.Name = "Mobility"
	s.ApplyHabitForm()
	if s.Habits[0].Name != "Mobility" {
		t.Errorf("edit should rename the habit, got %q", s.Habits[0].Name)
	}
}

func TestRenameCategory(t *testing.T) {
	s := newTestSession()
	s.Selected = 0
	s.StartEditingCategory()
	if s.Mode != ModeEditingCategory {
		t.Fatalf("expected editing-category mode, got %d", s.Mode)
	}
	s.CategoryForm.Name = "Wellness"

	s.ApplyCategoryForm()
	for i := range s.Habits {
		if s.Habits[i].Category != "Wellness" {
			t.Errorf("habit %d should move to renamed category, got %q", i, s.Habits[i].Category)
		}
	}
}

func TestEditHabitRequiresHabitSelection(t *testing.T) {
	s := newTestSession()
	s.Selected = 0 // category header
	s.StartEditingHabit()
	if s.Mode != ModeNormal {
		t.Errorf("editing a non-habit entry should be a no-op, got mode %d", s.Mode)
	}
}

func TestCancelAbandonsForm(t *testing.T) {
	s := newTestSession()
	s.StartAddingTodo()
	s.TodoForm.Description = "half typed"
	s.Cancel()
	if s.Mode != ModeNormal {
		t.Errorf("cancel should restore normal mode, got %d", s.Mode)
	}
	if len(s.Todos) != 1 {
		t.Errorf("cancel should not commit the todo, got %d todos", len(s.Todos))
	}
}

func TestDateAndWeekNavigation(t *testing.T) {
	s := newTestSession()
	s.NextDay()
	if got := s.Date; !got.Equal(day(2024, time.March, 16)) {
		t.Errorf("expected March 16, got %v", got)
	}
	s.PreviousDay()
	s.PreviousDay()
	if got := s.Date; !got.Equal(day(2024, time.March, 14)) {
		t.Errorf("expected March 14, got %v", got)
	}
}

func TestWeekStart(t *testing.T) {
	// March 15 2024 is a Friday; its week starts Monday March 11.
	s := newTestSession()
	if got := s.WeekStart(); !got.Equal(day(2024, time.March, 11)) {
		t.Errorf("expected Monday March 11, got %v", got)
	}

	s.PreviousWeek()
	if got := s.WeekStart(); !got.Equal(day(2024, time.March, 4)) {
		t.Errorf("expected Monday March 4, got %v", got)
	}

	s.NextWeek()
	s.NextWeek()
	if got := s.WeekStart(); !got.Equal(day(2024, time.March, 18)) {
		t.Errorf("expected Monday March 18, got %v", got)
	}
}
