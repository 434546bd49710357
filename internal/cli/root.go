package cli

import (
	"fmt"
	"time"

	"github.com/iblamekonradzuse/habit-tracker/internal/config"
	"github.com/iblamekonradzuse/habit-tracker/internal/models"
	"github.com/iblamekonradzuse/habit-tracker/internal/storage"
	"github.com/iblamekonradzuse/habit-tracker/internal/validation"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
}

// parseDateArg resolves an optional YYYY-MM-DD argument, defaulting to
// today. The returned time is truncated to midnight UTC.
func parseDateArg(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	if err := validation.Day(s); err != nil {
		return time.Time{}, err
	}
	return models.ParseDay(s)
}

// findHabit locates a habit by exact name, trying category/name when the
// plain name is ambiguous.
func findHabit(habits []models.Habit, name string) (int, error) {
	var matches []int
	for i := range habits {
		if habits[i].Name == name {
			matches = append(matches, i)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		for i := range habits {
			if habits[i].Category+"/"+habits[i].Name == name {
				return i, nil
			}
		}
		return 0, fmt.Errorf("habit %q not found", name)
	default:
		return 0, fmt.Errorf("habit name %q is ambiguous, qualify it as category/name", name)
	}
}

func completionMark(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}
