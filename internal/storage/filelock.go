package storage

import (
	"fmt"

	"github.com/gofrs/flock"
)

// lockFile acquires an exclusive advisory lock on path (created if missing).
// It returns an unlock function that must be called to release the lock.
func lockFile(path string) (unlock func() error, err error) {
	fl := flock.New(path)
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("acquiring file lock: %w", err)
	}
	return fl.Unlock, nil
}
