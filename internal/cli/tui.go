package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iblamekonradzuse/habit-tracker/internal/backup"
	"github.com/iblamekonradzuse/habit-tracker/internal/lockfile"
	"github.com/iblamekonradzuse/habit-tracker/internal/logger"
	"github.com/iblamekonradzuse/habit-tracker/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Two instances writing snapshot saves would silently lose data.
	lock, err := lockfile.Acquire(ctx.Store.GetDataDir())
	if err != nil {
		if errors.Is(err, lockfile.ErrAlreadyRunning) {
			return err
		}
		return fmt.Errorf("failed to acquire instance lock: %w", err)
	}
	defer lock.Release()

	performAutomaticBackup(ctx)

	model, err := tui.NewModel(ctx.Store, ctx.Config)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

// performAutomaticBackup snapshots the data files on startup. Failures
// are logged, not fatal: a fresh install has nothing to back up yet.
func performAutomaticBackup(ctx *Context) {
	mgr := backup.NewManager(ctx.Store.GetDataDir())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Debug("Automatic backup skipped", "error", err)
	}
}
