package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestCreateAndListBackups(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "habits.json", `[{"name":"Stretch"}]`)
	writeDataFile(t, dir, "todos.json", `[]`)

	mgr := NewManager(dir)
	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("create backup failed: %v", err)
	}

	copied, err := os.ReadFile(filepath.Join(path, "habits.json"))
	if err != nil {
		t.Fatalf("backup should contain habits.json: %v", err)
	}
	if string(copied) != `[{"name":"Stretch"}]` {
		t.Errorf("backup content differs: %q", copied)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list backups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Files != 2 {
		t.Errorf("expected 2 files in snapshot, got %d", backups[0].Files)
	}
}

func TestCreateBackupEmptyDataDir(t *testing.T) {
	mgr := NewManager(t.TempDir())
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("backing up an empty data directory should fail")
	}
}

func TestListBackupsWithoutBackupDir(t *testing.T) {
	mgr := NewManager(t.TempDir())
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("listing absent backup dir should succeed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "habits.json", "original")

	mgr := NewManager(dir)
	snapshot, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("create backup failed: %v", err)
	}

	writeDataFile(t, dir, "habits.json", "modified")

	if err := mgr.RestoreBackup(snapshot); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "habits.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "original" {
		t.Errorf("restore should bring back the snapshot content, got %q", content)
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	mgr := NewManager(t.TempDir())
	if err := mgr.RestoreBackup("/nonexistent/snapshot"); err == nil {
		t.Error("restoring a missing snapshot should fail")
	}
}
