// Package lockfile guards the data directory against concurrent
// application instances. The lock records the holder's PID and
// executable name; a lock whose process is gone or belongs to a
// different program is stale and gets reclaimed.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
	"github.com/iblamekonradzuse/habit-tracker/internal/logger"
)

var findProcessFunc = ps.FindProcess

// ErrAlreadyRunning reports that a live instance holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

type Lock struct {
	path string
}

// Acquire takes the instance lock for the given data directory. It
// reclaims stale locks left behind by crashed processes.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(dir, constants.LockFileName)
	if pid, ok := readHolder(path); ok {
		return nil, fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
	}

	content := fmt.Sprintf("%d|%s", os.Getpid(), executableName())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: path}, nil
}

// Release removes the lockfile. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// readHolder reports the PID of a live lock holder. A missing,
// malformed, or stale lockfile reads as unheld.
func readHolder(path string) (int, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		logger.Warn("Reclaiming malformed lockfile", "path", path)
		return 0, false
	}

	pid, err := strconv.Atoi(parts[0])
	if err != nil {
		logger.Warn("Reclaiming lockfile with invalid pid", "path", path)
		return 0, false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		logger.Info("Reclaiming stale lockfile", "pid", pid)
		return 0, false
	}

	if !strings.HasPrefix(process.Executable(), parts[1]) {
		// PID was recycled by an unrelated process.
		logger.Info("Reclaiming recycled lockfile", "pid", pid, "executable", process.Executable())
		return 0, false
	}

	return pid, true
}

func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return constants.AppName
	}
	return filepath.Base(exe)
}
