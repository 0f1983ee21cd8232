package service

import (
	"context"
	"time"

	"foodlink/internal/errors"
)

// ErrLockNotObtained is returned when another holder owns the lock.
var ErrLockNotObtained = errors.New("lock not obtained")

// Lock is a held lock that must be released by its owner.
type Lock interface {
	Release(ctx context.Context) error
}

// Locker acquires named locks shared by every replica of the service.
type Locker interface {
	// Obtain tries once to take key for ttl and returns ErrLockNotObtained when it is held.
	Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}
