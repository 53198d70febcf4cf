package redis

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turtacn/MacBench/pkg/errors"
)

// KVStore stores raw strings under a key prefix.  A missing key reads as
// ("", false, nil).
type KVStore struct {
	client *Client
	prefix string
	ttl    time.Duration
}

// NewKVStore returns a KVStore.  ttl of zero keeps keys forever.
func NewKVStore(client *Client, prefix string, ttl time.Duration) *KVStore {
	return &KVStore{client: client, prefix: prefix, ttl: ttl}
}

// Get reads key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if stderrors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrCodeCacheError, "kv get failed").WithDetail(key)
	}
	return val, true, nil
}

// Set writes key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "kv set failed").WithDetail(key)
	}
	return nil
}

//Personal.AI order the ending
