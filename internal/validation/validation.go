package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
	"github.com/iblamekonradzuse/habit-tracker/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyHabitName       ConflictType = "empty_habit_name"
	ConflictDuplicateHabitName   ConflictType = "duplicate_habit_name"
	ConflictInvalidFrequency     ConflictType = "invalid_frequency"
	ConflictInvalidCompletionDay ConflictType = "invalid_completion_day"
	ConflictUnsortedCompletions  ConflictType = "unsorted_completions"
	ConflictEmptyTodo            ConflictType = "empty_todo"
	ConflictDuplicateID          ConflictType = "duplicate_id"
)

// Conflict represents a detected problem in the stored collections
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Habit/todo names involved
	IDs         []string // Entity IDs involved (for auto-fixing)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks habits and todos for data problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabits checks the habit collection for conflicts
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seenIDs := make(map[string][]string)
	nameCount := make(map[string][]string)
	for _, h := range habits {
		seenIDs[h.ID] = append(seenIDs[h.ID], h.Name)

		if strings.TrimSpace(h.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyHabitName,
				Description: fmt.Sprintf("Habit %s has an empty name", h.ID),
				IDs:         []string{h.ID},
			})
			continue
		}

		// Duplicates only conflict within the same category.
		key := h.Category + "\x00" + h.Name
		nameCount[key] = append(nameCount[key], h.ID)
	}

	for id, names := range seenIDs {
		if len(names) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate habit ID %s shared by %v", id, names),
				Items:       names,
				IDs:         []string{id},
			})
		}
	}

	for key, ids := range nameCount {
		if len(ids) > 1 {
			name := key[strings.Index(key, "\x00")+1:]
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids),
				Items:       []string{name},
				IDs:         ids,
			})
		}
	}

	for _, h := range habits {
		if _, err := models.ParseFrequency(string(h.Frequency)); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidFrequency,
				Description: fmt.Sprintf("Habit %q has invalid frequency: %s", h.Name, h.Frequency),
				Items:       []string{h.Name},
				IDs:         []string{h.ID},
			})
		}

		for _, day := range h.CompletedDates {
			if _, err := models.ParseDay(day); err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidCompletionDay,
					Description: fmt.Sprintf("Habit %q has invalid completion date %q (want %s)", h.Name, day, constants.DateFormat),
					Items:       []string{h.Name},
					IDs:         []string{h.ID},
				})
			}
		}

		if !sort.StringsAreSorted(h.CompletedDates) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnsortedCompletions,
				Description: fmt.Sprintf("Habit %q has unsorted completion dates", h.Name),
				Items:       []string{h.Name},
				IDs:         []string{h.ID},
			})
		}
	}

	return result
}

// ValidateTodos checks the todo collection for conflicts
func (v *Validator) ValidateTodos(todos []models.Todo) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seenIDs := make(map[string]int)
	for _, t := range todos {
		seenIDs[t.ID]++
		if strings.TrimSpace(t.Description) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyTodo,
				Description: fmt.Sprintf("Todo %s has an empty description", t.ID),
				IDs:         []string{t.ID},
			})
		}
	}

	for id, count := range seenIDs {
		if count > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate todo ID %s appears %d times", id, count),
				IDs:         []string{id},
			})
		}
	}

	return result
}

// HabitName validates a habit or category name entered in a form.
func HabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}

// TodoDescription validates a todo description entered in a form.
func TodoDescription(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return fmt.Errorf("description must not be empty")
	}
	return nil
}

// Day validates a user-supplied date argument.
func Day(s string) error {
	if _, err := models.ParseDay(s); err != nil {
		return fmt.Errorf("invalid date %q (want %s)", s, constants.DateFormat)
	}
	return nil
}
