package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
	"github.com/iblamekonradzuse/habit-tracker/internal/models"
)

// JSONStore persists habits and todos as two JSON files in the data
// directory. A missing file reads as an empty collection, so a first run
// needs no explicit setup beyond the directory.
type JSONStore struct {
	dir string
}

func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{
		dir: dataDir,
	}
}

func (s *JSONStore) habitsPath() string {
	return filepath.Join(s.dir, constants.HabitsFileName)
}

func (s *JSONStore) todosPath() string {
	return filepath.Join(s.dir, constants.TodosFileName)
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Load() error {
	if _, err := os.Stat(s.dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to access data directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) LoadHabits() ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.readFile(s.habitsPath(), &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if habits == nil {
		habits = []models.Habit{}
	}
	return s.writeFile(s.habitsPath(), habits)
}

func (s *JSONStore) LoadTodos() ([]models.Todo, error) {
	var todos []models.Todo
	if err := s.readFile(s.todosPath(), &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *JSONStore) SaveTodos(todos []models.Todo) error {
	if todos == nil {
		todos = []models.Todo{}
	}
	return s.writeFile(s.todosPath(), todos)
}

func (s *JSONStore) readFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: nothing persisted yet.
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) writeFile(path string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// GetDataDir returns the directory holding the JSON files.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Multiple processes sharing the same data directory are guarded
//     against at a higher level by the lockfile package.
func (s *JSONStore) GetDataDir() string {
	return s.dir
}
