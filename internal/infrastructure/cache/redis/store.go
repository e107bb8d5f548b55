package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/felixbraun/storeradar/internal/core/domain"
)

// Store is a TTL-bounded byte cache on Redis. A miss is (nil, nil), entries
// expire by TTL only, there is no invalidation path.
type Store struct {
	client *redis.Client
}

// New parses redisURL and verifies connectivity.
func New(ctx context.Context, redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, fmt.Sprintf("parse redis url %q", redisURL), err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, domain.WrapError(domain.ErrTemporary, "redis ping", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapError(domain.ErrTemporary, fmt.Sprintf("redis get %q", key), err)
	}
	return val, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return domain.WrapError(domain.ErrTemporary, fmt.Sprintf("redis set %q", key), err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
