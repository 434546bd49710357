package models

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
)

// Habit represents a recurring practice to track. CompletedDates holds
// YYYY-MM-DD day strings, kept sorted ascending with no duplicates; all
// mutation goes through MarkCompleted/UnmarkCompleted so readers can rely
// on that invariant.
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Frequency      Frequency `json:"frequency"`
	CompletedDates []string  `json:"completed_dates"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewHabit creates a habit with no completions recorded.
func NewHabit(name, category string, freq Frequency) Habit {
	return Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Frequency: freq,
		CreatedAt: time.Now(),
	}
}

// Day formats a time as the canonical YYYY-MM-DD day string.
func Day(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD day string into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, s, time.UTC)
}

// MarkCompleted records a completion for the given date. Marking a date
// that is already recorded is a no-op.
func (h *Habit) MarkCompleted(date time.Time) {
	day := Day(date)
	i := sort.SearchStrings(h.CompletedDates, day)
	if i < len(h.CompletedDates) && h.CompletedDates[i] == day {
		return
	}
	h.CompletedDates = append(h.CompletedDates, "")
	copy(h.CompletedDates[i+1:], h.CompletedDates[i:])
	h.CompletedDates[i] = day
}

// UnmarkCompleted removes a completion for the given date if present.
func (h *Habit) UnmarkCompleted(date time.Time) {
	day := Day(date)
	i := sort.SearchStrings(h.CompletedDates, day)
	if i < len(h.CompletedDates) && h.CompletedDates[i] == day {
		h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
	}
}

// IsCompleted reports whether a completion is recorded for the date.
func (h *Habit) IsCompleted(date time.Time) bool {
	day := Day(date)
	i := sort.SearchStrings(h.CompletedDates, day)
	return i < len(h.CompletedDates) && h.CompletedDates[i] == day
}

// CompletionStatus returns one bool per day in [start, end] inclusive,
// ascending. The result is empty when end is before start.
func (h *Habit) CompletionStatus(start, end time.Time) []bool {
	var status []bool
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		status = append(status, h.IsCompleted(d))
	}
	return status
}

// latestOnOrBefore returns the most recent completed date that is not
// after the given day. Day strings sort chronologically, so the sorted
// slice answers this directly.
func (h *Habit) latestOnOrBefore(day string) (time.Time, bool) {
	i := sort.SearchStrings(h.CompletedDates, day)
	if i < len(h.CompletedDates) && h.CompletedDates[i] == day {
		t, err := ParseDay(h.CompletedDates[i])
		return t, err == nil
	}
	if i == 0 {
		return time.Time{}, false
	}
	t, err := ParseDay(h.CompletedDates[i-1])
	return t, err == nil
}

// Streak counts consecutive completed periods ending at endDate, walking
// backward one period at a time. A completed date strictly before the
// probe day breaks a daily streak immediately; weekly streaks match on
// ISO week, monthly on calendar year+month. An empty completion set
// yields 0.
func (h *Habit) Streak(endDate time.Time) int {
	streak := 0
	current := endDate

	for {
		last, ok := h.latestOnOrBefore(Day(current))
		if !ok {
			return streak
		}

		switch h.Frequency {
		case FrequencyWeekly:
			ly, lw := last.ISOWeek()
			cy, cw := current.ISOWeek()
			if ly != cy || lw != cw {
				return streak
			}
			streak++
			current = current.AddDate(0, 0, -7)
		case FrequencyMonthly:
			if last.Year() != current.Year() || last.Month() != current.Month() {
				return streak
			}
			streak++
			// Step to the day before the first of the current month,
			// one step per calendar month regardless of month length.
			current = time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		default:
			if Day(last) != Day(current) {
				return streak
			}
			streak++
			current = current.AddDate(0, 0, -1)
		}
	}
}
