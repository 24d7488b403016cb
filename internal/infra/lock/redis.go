package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// RedisLocker holds locks as SET NX keys carrying a random token, so only
// the owner can delete them.
type RedisLocker struct {
	client  *redis.Client
	ttl     time.Duration
	retries int
	backoff time.Duration
	logger  zerolog.Logger
}

func NewRedisLocker(client *redis.Client, logger zerolog.Logger) *RedisLocker {
	return &RedisLocker{
		client:  client,
		ttl:     10 * time.Second,
		retries: 20,
		backoff: 50 * time.Millisecond,
		logger:  logger,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	for attempt := 0; attempt <= l.retries; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", ErrNotAcquired, key, ctx.Err())
		case <-time.After(l.backoff):
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotAcquired, key)
}

func (l *RedisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int64()
	if err != nil {
		l.logger.Error().Err(err).Str("key", key).Msg("release booking lock")
		return
	}
	if n == 0 {
		l.logger.Warn().Str("key", key).Msg("booking lock expired before release")
	}
}

var _ Locker = (*RedisLocker)(nil)
