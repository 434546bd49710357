package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/iblamekonradzuse/habit-tracker/internal/models"
	"github.com/iblamekonradzuse/habit-tracker/internal/session"
	"github.com/iblamekonradzuse/habit-tracker/internal/validation"
)

// newHabitForm creates the form for adding or editing a habit
func newHabitForm(fm *session.HabitForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(validation.HabitName),
			huh.NewInput().
				Title("Category").
				Value(&fm.Category).
				Validate(validation.HabitName),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", models.FrequencyDaily),
					huh.NewOption("Weekly", models.FrequencyWeekly),
					huh.NewOption("Monthly", models.FrequencyMonthly),
				).
				Value(&fm.Frequency),
		),
	).WithTheme(huh.ThemeDracula())
}

// newTodoForm creates the form for adding a todo
func newTodoForm(fm *session.TodoForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Todo").
				Value(&fm.Description).
				Validate(validation.TodoDescription),
		),
	).WithTheme(huh.ThemeDracula())
}

// newCategoryForm creates the form for naming or renaming a category
func newCategoryForm(fm *session.CategoryForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category").
				Value(&fm.Name).
				Validate(validation.HabitName),
		),
	).WithTheme(huh.ThemeDracula())
}
