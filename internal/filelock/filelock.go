// Package filelock guards a target root against concurrent organizer runs.
// Two processes shuffling files in the same tree at once would race on
// collision checks and produce an unreliable history journal.
package filelock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the lock file created inside the target root.
const LockFileName = ".organizer.lock"

// RunLock wraps a flock lock scoped to one target root.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// NewRunLock creates a lock for the given target root. The lock file is
// created inside the root so runs against different roots never contend.
func NewRunLock(targetRoot string) *RunLock {
	path := filepath.Join(targetRoot, LockFileName)
	return &RunLock{
		flock: flock.New(path),
		path:  path,
	}
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false if another run holds it.
func (l *RunLock) TryLock() (bool, error) {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	return acquired, nil
}

// Lock acquires the lock, blocking until it is available.
func (l *RunLock) Lock() error {
	if err := l.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	return nil
}

// Unlock releases the lock.
func (l *RunLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// Path returns the lock file path.
func (l *RunLock) Path() string { return l.path }
