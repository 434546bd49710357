package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/iblamekonradzuse/habit-tracker/internal/models"
	"github.com/iblamekonradzuse/habit-tracker/internal/projection"
	"github.com/iblamekonradzuse/habit-tracker/internal/validation"
)

type HabitAddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Category  string `short:"c" help:"Category the habit belongs to." default:"General"`
	Frequency string `short:"f" help:"How often the habit is due (daily|weekly|monthly)." default:"daily"`
}

func (c *HabitAddCmd) Validate() error {
	return validation.HabitName(c.Name)
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	freq, err := models.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.LoadHabits()
	if err != nil {
		return err
	}

	habit := models.NewHabit(strings.TrimSpace(c.Name), strings.TrimSpace(c.Category), freq)
	habits = append(habits, habit)
	if err := ctx.Store.SaveHabits(habits); err != nil {
		return err
	}

	fmt.Printf("Added %s habit %q to category %q\n", freq, habit.Name, habit.Category)
	return nil
}

type HabitListCmd struct {
	Date string `short:"d" help:"Reference date (YYYY-MM-DD), defaults to today."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := parseDateArg(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.LoadHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	writeHabitList(os.Stdout, habits, date)
	return nil
}

// writeHabitList renders habits grouped the same way the list view does:
// categories in ascending name order, members in source order.
func writeHabitList(w io.Writer, habits []models.Habit, date time.Time) {
	first := true
	for _, e := range projection.Build(habits, nil, projection.TabAll) {
		switch e.Kind {
		case projection.KindCategory:
			if !first {
				fmt.Fprintln(w)
			}
			first = false
			fmt.Fprintf(w, "%s:\n", e.Category)
		case projection.KindHabit:
			h := habits[e.SourceIndex]
			fmt.Fprintf(w, "  %s %s (%s, streak %d)\n",
				completionMark(h.IsCompleted(date)), h.Name, h.Frequency.Label(), h.Streak(date))
		}
	}
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name, or category/name when ambiguous."`
	Date string `short:"d" help:"Completion date (YYYY-MM-DD), defaults to today."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	return markHabit(ctx, c.Name, c.Date, true)
}

type HabitUndoneCmd struct {
	Name string `arg:"" help:"Habit name, or category/name when ambiguous."`
	Date string `short:"d" help:"Completion date (YYYY-MM-DD), defaults to today."`
}

func (c *HabitUndoneCmd) Run(ctx *Context) error {
	return markHabit(ctx, c.Name, c.Date, false)
}

func markHabit(ctx *Context, name, dateArg string, done bool) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := parseDateArg(dateArg)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.LoadHabits()
	if err != nil {
		return err
	}

	i, err := findHabit(habits, name)
	if err != nil {
		return err
	}

	if done {
		habits[i].MarkCompleted(date)
	} else {
		habits[i].UnmarkCompleted(date)
	}
	if err := ctx.Store.SaveHabits(habits); err != nil {
		return err
	}

	verb := "Marked"
	if !done {
		verb = "Unmarked"
	}
	fmt.Printf("%s %q for %s\n", verb, habits[i].Name, models.Day(date))
	return nil
}

type HabitStreaksCmd struct {
	Date string `short:"d" help:"Reference date (YYYY-MM-DD), defaults to today."`
}

func (c *HabitStreaksCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := parseDateArg(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.LoadHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Printf("Streaks as of %s:\n", models.Day(date))
	for _, h := range habits {
		fmt.Printf("  %3d  %s (%s)\n", h.Streak(date), h.Name, h.Frequency.Label())
	}
	return nil
}

type HabitLogCmd struct {
	Name string `arg:"" help:"Habit name, or category/name when ambiguous."`
	Days int    `short:"n" help:"Number of days to show." default:"30"`
	Date string `short:"d" help:"End date (YYYY-MM-DD), defaults to today."`
}

func (c *HabitLogCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	end, err := parseDateArg(c.Date)
	if err != nil {
		return err
	}
	start := end.AddDate(0, 0, -(c.Days - 1))

	habits, err := ctx.Store.LoadHabits()
	if err != nil {
		return err
	}

	i, err := findHabit(habits, c.Name)
	if err != nil {
		return err
	}
	h := habits[i]

	var grid strings.Builder
	for _, done := range h.CompletionStatus(start, end) {
		if done {
			grid.WriteByte('x')
		} else {
			grid.WriteByte('.')
		}
	}

	fmt.Printf("%s (%s) from %s to %s:\n", h.Name, h.Frequency.Label(), models.Day(start), models.Day(end))
	fmt.Println(grid.String())
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name, or category/name when ambiguous."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.LoadHabits()
	if err != nil {
		return err
	}

	i, err := findHabit(habits, c.Name)
	if err != nil {
		return err
	}

	name := habits[i].Name
	habits = append(habits[:i], habits[i+1:]...)
	if err := ctx.Store.SaveHabits(habits); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q\n", name)
	return nil
}
