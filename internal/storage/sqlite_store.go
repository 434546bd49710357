package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
	"github.com/iblamekonradzuse/habit-tracker/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	frequency TEXT NOT NULL,
	created_at TEXT NOT NULL,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_completions (
	habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	day TEXT NOT NULL,
	UNIQUE(habit_id, day)
);

CREATE TABLE IF NOT EXISTS todos (
	id TEXT PRIMARY KEY,
	description TEXT NOT NULL,
	completed INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	position INTEGER NOT NULL
);
`

// SQLiteStore persists the collections in a single SQLite database.
// Saves replace the whole table set in one transaction; the collections
// are small enough that snapshot writes beat row-level bookkeeping.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent, run it on every open so databases
	// created by older builds pick up new tables.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) LoadHabits() ([]models.Habit, error) {
	rows, err := s.db.Query("SELECT id, name, category, frequency, created_at FROM habits ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var frequency, createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &h.Category, &frequency, &createdAt); err != nil {
			return nil, err
		}
		h.Frequency = models.Frequency(frequency)
		if h.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at for habit %s: %w", h.ID, err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		if err := s.loadCompletions(&habits[i]); err != nil {
			return nil, err
		}
	}

	return habits, nil
}

func (s *SQLiteStore) loadCompletions(h *models.Habit) error {
	rows, err := s.db.Query("SELECT day FROM habit_completions WHERE habit_id = ? ORDER BY day", h.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return err
		}
		h.CompletedDates = append(h.CompletedDates, day)
	}
	return rows.Err()
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habit_completions"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return err
	}

	habitStmt, err := tx.Prepare("INSERT INTO habits (id, name, category, frequency, created_at, position) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer habitStmt.Close()

	dayStmt, err := tx.Prepare("INSERT INTO habit_completions (habit_id, day) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer dayStmt.Close()

	for i, h := range habits {
		if _, err := habitStmt.Exec(h.ID, h.Name, h.Category, string(h.Frequency), h.CreatedAt.UTC().Format(time.RFC3339), i); err != nil {
			return err
		}
		for _, day := range h.CompletedDates {
			if _, err := dayStmt.Exec(h.ID, day); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadTodos() ([]models.Todo, error) {
	rows, err := s.db.Query("SELECT id, description, completed, created_at FROM todos ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Description, &t.Completed, &createdAt); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at for todo %s: %w", t.ID, err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *SQLiteStore) SaveTodos(todos []models.Todo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM todos"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO todos (id, description, completed, created_at, position) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range todos {
		if _, err := stmt.Exec(t.ID, t.Description, t.Completed, t.CreatedAt.UTC().Format(time.RFC3339), i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetDataDir() string {
	return filepath.Dir(s.path)
}
