package state

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for the redis-backed store.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"storefront:"`
}

// Connect creates a redis client, retrying transient failures, and verifies
// connectivity with a ping before returning.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	u, err := url.Parse(cfg.ConnectionURL)
	if err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
		return nil, fmt.Errorf("%w: invalid connection URL %q", ErrConnectionFailed, cfg.ConnectionURL)
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	attempts := max(cfg.RetryAttempts, 1)

	var client *redis.Client
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, errors.Join(ErrConnectionFailed, ctx.Err())
			case <-time.After(cfg.RetryInterval):
			}
		}

		client = redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		client.Close()
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

// Healthcheck returns a probe suitable for readiness checks.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// RedisStore persists records in redis. Useful when the storefront runs on a
// shared device and state must survive the local machine.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an established redis client. The prefix namespaces all
// record keys; pass the configured RedisConfig.KeyPrefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context, key string, v any) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return fmt.Errorf("read state record %s: %w", key, err)
	}
	return decodeRecord(data, v)
}

func (s *RedisStore) Save(ctx context.Context, key string, v any) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := encodeRecord(v)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("write state record %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete state record %s: %w", key, err)
	}
	return nil
}
