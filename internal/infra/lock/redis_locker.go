// Package lock provides the named locks that keep periodic jobs from overlapping across replicas.
package lock

import (
	"context"
	"time"

	"foodlink/internal/domain/service"

	"github.com/bsm/redislock"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type redisLocker struct {
	client *redislock.Client
}

// NewRedisLocker creates a Locker backed by Redis SET NX.
func NewRedisLocker(rdb redis.UniversalClient) service.Locker {
	return &redisLocker{client: redislock.New(rdb)}
}

// Obtain tries once to take key for ttl. The key is used verbatim; callers own its namespace.
func (l *redisLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (service.Lock, error) {
	lock, err := l.client.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, service.ErrLockNotObtained
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to obtain lock %s", key)
	}

	return &redisLock{lock: lock}, nil
}

type redisLock struct {
	lock *redislock.Lock
}

// Release gives the lock back; a lock that already expired is not an error.
func (l *redisLock) Release(ctx context.Context) error {
	err := l.lock.Release(ctx)
	if errors.Is(err, redislock.ErrLockNotHeld) {
		return nil
	}

	return errors.WithStack(err)
}
