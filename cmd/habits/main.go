package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/iblamekonradzuse/habit-tracker/internal/apperr"
	"github.com/iblamekonradzuse/habit-tracker/internal/cli"
	"github.com/iblamekonradzuse/habit-tracker/internal/config"
	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
	"github.com/iblamekonradzuse/habit-tracker/internal/logger"
	"github.com/iblamekonradzuse/habit-tracker/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habits storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks on the stored data."`
	Habit  struct {
		Add     cli.HabitAddCmd     `cmd:"" help:"Add a new habit."`
		List    cli.HabitListCmd    `cmd:"" help:"List habits grouped by category."`
		Done    cli.HabitDoneCmd    `cmd:"" help:"Mark a habit completed."`
		Undone  cli.HabitUndoneCmd  `cmd:"" help:"Unmark a habit completion."`
		Streaks cli.HabitStreaksCmd `cmd:"" help:"Show current streaks."`
		Log     cli.HabitLogCmd     `cmd:"" help:"Show a habit's completion history."`
		Delete  cli.HabitDeleteCmd  `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Todo struct {
		Add    cli.TodoAddCmd    `cmd:"" help:"Add a todo."`
		List   cli.TodoListCmd   `cmd:"" help:"List todos."`
		Toggle cli.TodoToggleCmd `cmd:"" help:"Toggle a todo's completion."`
		Delete cli.TodoDeleteCmd `cmd:"" help:"Delete a todo."`
	} `cmd:"" help:"Manage todos."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the data files."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit and todo tracker with categories and streaks"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configDir, err := config.Dir()
	if err != nil {
		apperr.Fatal(err)
	}

	cfg, err := config.LoadOrCreate(filepath.Join(configDir, constants.ConfigFileName))
	if err != nil {
		apperr.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug || cfg.Debug, ConfigDir: configDir}); err != nil {
		apperr.Fatal(err)
	}

	store, err := storage.NewProvider(cfg.Backend, cfg.DataDir)
	if err != nil {
		apperr.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperr.Fatal(err)
	}
}
