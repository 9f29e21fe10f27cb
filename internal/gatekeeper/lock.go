package gatekeeper

import (
	"fmt"
	"os"
	"strconv"
)

// runLock is an exclusive lock on a file beside the run database. It keeps
// a second process sharing the database from starting a run.
type runLock struct {
	path string
	file *os.File
}

// lockPath returns the lock file for the database at dbPath, or "" when the
// database is private to this process.
func lockPath(dbPath string) string {
	if dbPath == "" || dbPath == ":memory:" {
		return ""
	}
	return dbPath + ".lock"
}

// tryLock takes the lock without waiting. It reports false when another
// holder has it.
func (l *runLock) tryLock() (bool, error) {
	if l.file != nil {
		return true, nil
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open run lock %s: %w", l.path, err)
	}

	ok, err := lockFile(f)
	if err != nil || !ok {
		f.Close()
		if err != nil {
			return false, fmt.Errorf("failed to lock %s: %w", l.path, err)
		}
		return false, nil
	}

	// The pid is informational only.
	if err := f.Truncate(0); err == nil {
		_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	l.file = f
	return true, nil
}

func (l *runLock) unlock() {
	if l.file == nil {
		return
	}
	_ = unlockFile(l.file)
	l.file.Close()
	l.file = nil
}
