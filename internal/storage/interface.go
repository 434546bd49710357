package storage

import "github.com/iblamekonradzuse/habit-tracker/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	LoadHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Todos
	LoadTodos() ([]models.Todo, error)
	SaveTodos([]models.Todo) error

	// Utils
	GetDataDir() string
}
