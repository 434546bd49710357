package models

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a one-off item with a completion flag toggled in place.
type Todo struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTodo(description string) Todo {
	return Todo{
		ID:          uuid.New().String(),
		Description: description,
		CreatedAt:   time.Now(),
	}
}

func (t *Todo) ToggleCompletion() {
	t.Completed = !t.Completed
}
