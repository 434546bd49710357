package models

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMarkAndUnmarkCompleted(t *testing.T) {
	h := NewHabit("Read", "Learning", FrequencyDaily)
	d := date(2024, time.March, 10)

	if h.IsCompleted(d) {
		t.Fatalf("new habit should have no completions")
	}

	h.MarkCompleted(d)
	if !h.IsCompleted(d) {
		t.Errorf("expected date to be completed after MarkCompleted")
	}

	h.UnmarkCompleted(d)
	if h.IsCompleted(d) {
		t.Errorf("expected date to be uncompleted after UnmarkCompleted")
	}
}

func TestMarkCompletedIdempotent(t *testing.T) {
	h := NewHabit("Read", "", FrequencyDaily)
	d := date(2024, time.March, 10)

	h.MarkCompleted(d)
	once := append([]string(nil), h.CompletedDates...)

	h.MarkCompleted(d)
	if !reflect.DeepEqual(h.CompletedDates, once) {
		t.Errorf("marking the same date twice changed the set: %v vs %v", h.CompletedDates, once)
	}
}

func TestCompletedDatesStaySorted(t *testing.T) {
	h := NewHabit("Read", "", FrequencyDaily)
	h.MarkCompleted(date(2024, time.March, 10))
	h.MarkCompleted(date(2024, time.January, 2))
	h.MarkCompleted(date(2024, time.February, 20))

	want := []string{"2024-01-02", "2024-02-20", "2024-03-10"}
	if !reflect.DeepEqual(h.CompletedDates, want) {
		t.Errorf("expected sorted dates %v, got %v", want, h.CompletedDates)
	}
}

func TestUnmarkCompletedMissingDateIsNoOp(t *testing.T) {
	h := NewHabit("Read", "", FrequencyDaily)
	h.MarkCompleted(date(2024, time.March, 10))

	h.UnmarkCompleted(date(2024, time.March, 11))
	if len(h.CompletedDates) != 1 {
		t.Errorf("unmarking an absent date should not change the set, got %v", h.CompletedDates)
	}
}

func TestCompletionStatus(t *testing.T) {
	h := NewHabit("Read", "", FrequencyDaily)
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 5)
	h.MarkCompleted(date(2024, time.January, 2))
	h.MarkCompleted(date(2024, time.January, 5))

	got := h.CompletionStatus(start, end)
	want := []bool{false, true, false, false, true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CompletionStatus = %v, want %v", got, want)
	}

	for i, v := range got {
		if v != h.IsCompleted(start.AddDate(0, 0, i)) {
			t.Errorf("element %d disagrees with IsCompleted", i)
		}
	}
}

func TestCompletionStatusEmptyWhenEndBeforeStart(t *testing.T) {
	h := NewHabit("Read", "", FrequencyDaily)
	got := h.CompletionStatus(date(2024, time.January, 5), date(2024, time.January, 1))
	if len(got) != 0 {
		t.Errorf("expected empty status when end < start, got %v", got)
	}
}

func TestDailyStreak(t *testing.T) {
	h := NewHabit("Exercise", "", FrequencyDaily)
	for d := 1; d <= 5; d++ {
		h.MarkCompleted(date(2024, time.January, d))
	}

	if got := h.Streak(date(2024, time.January, 5)); got != 5 {
		t.Errorf("streak ending on the last completed day = %d, want 5", got)
	}
	if got := h.Streak(date(2024, time.January, 6)); got != 0 {
		t.Errorf("streak ending the day after a gap = %d, want 0", got)
	}
}

func TestDailyStreakEmptySet(t *testing.T) {
	h := NewHabit("Exercise", "", FrequencyDaily)
	if got := h.Streak(date(2024, time.January, 1)); got != 0 {
		t.Errorf("streak over empty set = %d, want 0", got)
	}
}

func TestDailyStreakBrokenInMiddle(t *testing.T) {
	h := NewHabit("Exercise", "", FrequencyDaily)
	h.MarkCompleted(date(2024, time.January, 1))
	h.MarkCompleted(date(2024, time.January, 2))
	h.MarkCompleted(date(2024, time.January, 4))
	h.MarkCompleted(date(2024, time.January, 5))

	if got := h.Streak(date(2024, time.January, 5)); got != 2 {
		t.Errorf("streak across a gap = %d, want 2", got)
	}
}

func TestWeeklyStreak(t *testing.T) {
	h := NewHabit("Review", "", FrequencyWeekly)
	// One completion in each of three consecutive ISO weeks (2024 weeks 1-3).
	h.MarkCompleted(date(2024, time.January, 3))  // week 1, Wednesday
	h.MarkCompleted(date(2024, time.January, 10)) // week 2, Wednesday
	h.MarkCompleted(date(2024, time.January, 16)) // week 3, Tuesday

	if got := h.Streak(date(2024, time.January, 17)); got != 3 {
		t.Errorf("weekly streak = %d, want 3", got)
	}
}

func TestWeeklyStreakBreaksOnMissedWeek(t *testing.T) {
	h := NewHabit("Review", "", FrequencyWeekly)
	h.MarkCompleted(date(2024, time.January, 2))  // week 1
	h.MarkCompleted(date(2024, time.January, 15)) // week 3, week 2 missed

	if got := h.Streak(date(2024, time.January, 17)); got != 1 {
		t.Errorf("weekly streak with a missed week = %d, want 1", got)
	}
}

func TestMonthlyStreak(t *testing.T) {
	h := NewHabit("Budget", "", FrequencyMonthly)
	h.MarkCompleted(date(2024, time.January, 15))
	h.MarkCompleted(date(2024, time.February, 10))
	h.MarkCompleted(date(2024, time.March, 5))

	if got := h.Streak(date(2024, time.March, 20)); got != 3 {
		t.Errorf("monthly streak = %d, want 3", got)
	}
}

func TestMonthlyStreakAcrossYearBoundary(t *testing.T) {
	h := NewHabit("Budget", "", FrequencyMonthly)
	h.MarkCompleted(date(2023, time.December, 20))
	h.MarkCompleted(date(2024, time.January, 3))

	if got := h.Streak(date(2024, time.January, 31)); got != 2 {
		t.Errorf("monthly streak across year boundary = %d, want 2", got)
	}
}

func TestParseFrequency(t *testing.T) {
	for _, f := range Frequencies {
		got, err := ParseFrequency(string(f))
		if err != nil {
			t.Fatalf("ParseFrequency(%q) failed: %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFrequency(%q) = %q", f, got)
		}
	}

	if _, err := ParseFrequency("fortnightly"); err == nil {
		t.Errorf("expected error for unknown frequency")
	}
}
