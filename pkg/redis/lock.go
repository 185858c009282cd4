package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotHeld is returned by Unlock when the key expired or belongs to another holder.
var ErrLockNotHeld = errors.New("lock was not held by this client")

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

// Lock represents a distributed lock
type Lock struct {
	client    *Client
	key       string
	value     string
	ttl       time.Duration
	namespace string
}

// NewLock creates a new distributed lock. The key is stored as namespace::key when a
// namespace is given.
func NewLock(client *Client, namespace, key string, ttl time.Duration) *Lock {
	return &Lock{
		client:    client,
		key:       key,
		value:     uuid.NewString(),
		ttl:       ttl,
		namespace: namespace,
	}
}

// Key returns the full lock key
func (l *Lock) Key() string {
	if l.namespace != "" {
		return l.namespace + "::" + l.key
	}
	return l.key
}

// TryLock makes a single acquisition attempt using SET NX with the lock TTL.
func (l *Lock) TryLock(ctx context.Context) (bool, error) {
	acquired, err := l.client.GetClient().SetNX(ctx, l.Key(), l.value, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return acquired, nil
}

// Unlock releases the lock only if it is still held by this value.
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.Key()}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}
