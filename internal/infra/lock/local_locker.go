package lock

import (
	"context"
	"sync"
	"time"

	"foodlink/internal/domain/service"

	"github.com/jonboulle/clockwork"
)

// localLocker is an in-process Locker for single-replica deployments and tests.
type localLocker struct {
	mu    sync.Mutex
	clock clockwork.Clock
	held  map[string]localEntry
	seq   uint64
}

type localEntry struct {
	token     uint64
	expiresAt time.Time
}

// NewLocalLocker creates an in-process Locker.
func NewLocalLocker(clock clockwork.Clock) service.Locker {
	return &localLocker{
		clock: clock,
		held:  make(map[string]localEntry),
	}
}

// Obtain takes key unless another holder owns it and its ttl has not elapsed.
func (l *localLocker) Obtain(_ context.Context, key string, ttl time.Duration) (service.Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if entry, ok := l.held[key]; ok && now.Before(entry.expiresAt) {
		return nil, service.ErrLockNotObtained
	}

	l.seq++
	l.held[key] = localEntry{token: l.seq, expiresAt: now.Add(ttl)}

	return &localLock{owner: l, key: key, token: l.seq}, nil
}

type localLock struct {
	owner *localLocker
	key   string
	token uint64
}

// Release frees the key if this lock still owns it.
func (l *localLock) Release(_ context.Context) error {
	l.owner.mu.Lock()
	defer l.owner.mu.Unlock()

	if entry, ok := l.owner.held[l.key]; ok && entry.token == l.token {
		delete(l.owner.held, l.key)
	}

	return nil
}
