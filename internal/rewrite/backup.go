package rewrite

import (
	"fmt"
	"os"
)

// BackupPath derives the sibling path holding a file's untouched original.
func BackupPath(path, suffix string) string {
	return path + suffix
}

// EnsureBackup copies path's current on-disk bytes to its backup path unless
// a backup already exists. An existing backup is never overwritten, so the
// very first original survives repeated runs. Reports whether a new backup
// was written. A backup failure must block the subsequent write; the
// original is never overwritten unguarded.
func EnsureBackup(path, suffix string) (bool, error) {
	backup := BackupPath(path, suffix)
	if info, err := os.Stat(backup); err == nil {
		// Only a regular file counts as an existing backup. A directory or
		// device at the backup path is no safety copy, and writing the
		// original unguarded behind it would be silent data loss.
		if !info.Mode().IsRegular() {
			return false, fmt.Errorf("backup path %s exists but is not a regular file", backup)
		}
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup %s: %w", backup, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(backup, data, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write backup %s: %w", backup, err)
	}
	return true, nil
}
