// Package backup snapshots the data files before anything can damage
// them. Each backup is a timestamped directory holding a copy of every
// data file; old snapshots rotate out.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupPrefix is the prefix for backup snapshot directories
	BackupPrefix = "habits-"
)

// BackupInfo contains information about a backup snapshot
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Files     int
}

// Manager handles backup operations for a data directory
type Manager struct {
	dataDir   string
	backupDir string
}

// NewManager creates a new backup manager
func NewManager(dataDir string) *Manager {
	return &Manager{
		dataDir:   dataDir,
		backupDir: filepath.Join(dataDir, BackupDirName),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// dataFiles lists the files a snapshot covers. Absent files are fine,
// only the backends actually in use have files on disk.
func (m *Manager) dataFiles() []string {
	return []string{
		constants.HabitsFileName,
		constants.TodosFileName,
		constants.SQLiteFileName,
	}
}

// CreateBackup copies the current data files into a new timestamped
// snapshot directory and rotates old snapshots out.
func (m *Manager) CreateBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	snapshotDir := filepath.Join(m.backupDir, BackupPrefix+timestamp)

	counter := 1
	for {
		if _, err := os.Stat(snapshotDir); os.IsNotExist(err) {
			break
		}
		snapshotDir = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d", BackupPrefix, timestamp, counter))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup name")
		}
	}

	copied := 0
	for _, name := range m.dataFiles() {
		src := filepath.Join(m.dataDir, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if copied == 0 {
			if err := os.MkdirAll(snapshotDir, 0700); err != nil {
				return "", fmt.Errorf("failed to create snapshot directory: %w", err)
			}
		}
		if err := copyFile(src, filepath.Join(snapshotDir, name)); err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", name, err)
		}
		copied++
	}

	if copied == 0 {
		return "", fmt.Errorf("nothing to back up in %s", m.dataDir)
	}

	if err := m.rotateBackups(); err != nil {
		// Rotation failure should not lose the backup we just made.
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return snapshotDir, nil
}

// ListBackups returns all snapshots, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), BackupPrefix) {
			continue
		}

		timestampStr := strings.TrimPrefix(entry.Name(), BackupPrefix)
		// Drop a uniqueness counter suffix if present.
		if i := strings.LastIndex(timestampStr, "-"); i > 0 && len(timestampStr)-i-1 < 4 {
			timestampStr = timestampStr[:i]
		}

		timestamp, err := time.Parse("20060102-150405", timestampStr)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, entry.Name())
		files, err := os.ReadDir(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Files:     len(files),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// RestoreBackup copies a snapshot's files back into the data directory.
// The current state is snapshotted first so a bad restore can be undone.
func (m *Manager) RestoreBackup(snapshotPath string) error {
	if _, err := os.Stat(snapshotPath); err != nil {
		return fmt.Errorf("backup not found: %s", snapshotPath)
	}

	if _, err := m.CreateBackup(); err != nil {
		return fmt.Errorf("failed to snapshot current state before restore: %w", err)
	}

	for _, name := range m.dataFiles() {
		src := filepath.Join(snapshotPath, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := copyFile(src, filepath.Join(m.dataDir, name)); err != nil {
			return fmt.Errorf("failed to restore %s: %w", name, err)
		}
	}

	return nil
}

// rotateBackups removes the oldest snapshots beyond MaxBackups.
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.RemoveAll(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
