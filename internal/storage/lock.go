package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked means another process holds the store.
var ErrLocked = errors.New("storage: store is in use by another process")

const lockRetryInterval = 100 * time.Millisecond

// Lock is an exclusive lock on <db>.lock so only one process writes the store.
type Lock struct {
	flock *flock.Flock
}

// AcquireLock waits up to timeout for the lock next to dbPath.
// In-memory databases need no lock and get a no-op Lock.
func AcquireLock(dbPath string, timeout time.Duration) (*Lock, error) {
	if dbPath == memoryPath {
		return &Lock{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}
	fl := flock.New(dbPath + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return &Lock{flock: fl}, nil
}

func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}
