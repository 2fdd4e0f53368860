package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
)

// Lock keeps two replicas from running the same job at once.
type Lock interface {
	// TryLock returns ok false when another holder owns key. release must be
	// called once the guarded work is done.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}

// RedisLock is a Lock shared through Redis.
type RedisLock struct {
	locker *redislock.Client
	prefix string
}

func NewRedisLock(locker *redislock.Client, prefix string) (*RedisLock, error) {
	if locker == nil {
		return nil, errors.New("redis locker is required")
	}
	return &RedisLock{locker: locker, prefix: prefix}, nil
}

func (l *RedisLock) TryLock(
	ctx context.Context,
	key string,
	ttl time.Duration,
) (func(context.Context) error, bool, error) {
	lock, err := l.locker.Obtain(ctx, l.prefix+key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("obtain %s: %w", key, err)
	}

	release := func(ctx context.Context) error {
		err := lock.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			return nil
		}
		return err
	}
	return release, true, nil
}

// NoopLock always succeeds. It is used by single instance deployments
// without Redis.
type NoopLock struct{}

func (NoopLock) TryLock(context.Context, string, time.Duration) (func(context.Context) error, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}
