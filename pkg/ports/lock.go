package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a held lock.
type UnlockFunc func(ctx context.Context) error

// GameLocker serializes mutations to a single game across authority
// replicas. Lock blocks until the lock is acquired or ctx is done.
type GameLocker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
