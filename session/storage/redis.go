package storage

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/barberiapp/admin-cli/internal/errors"
)

const redisKeyPrefix = "barberiapp:session:"

var _ Backend = (*RedisBackend)(nil)

// RedisBackend keeps session entries in Redis, for shared terminals where
// several point-of-sale stations use one operator login. The Backend
// contract is synchronous, so calls run under a background context.
type RedisBackend struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisBackend(addr string) *RedisBackend {
	return &RedisBackend{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ctx:    context.Background(),
	}
}

// NewRedisBackendWithClient wraps an existing client, primarily for tests.
func NewRedisBackendWithClient(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client, ctx: context.Background()}
}

func (r *RedisBackend) Get(key string) (string, error) {
	value, err := r.client.Get(r.ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", errors.ErrNotFound
	}
	if err != nil {
		return "", pkgerrors.Wrapf(err, "[RedisBackend.Get] %s", key)
	}
	return value, nil
}

func (r *RedisBackend) Set(key, value string) error {
	if err := r.client.Set(r.ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return pkgerrors.Wrapf(err, "[RedisBackend.Set] %s", key)
	}
	return nil
}

func (r *RedisBackend) Delete(key string) error {
	if err := r.client.Del(r.ctx, redisKeyPrefix+key).Err(); err != nil {
		return pkgerrors.Wrapf(err, "[RedisBackend.Delete] %s", key)
	}
	return nil
}

// Close releases the underlying connection.
func (r *RedisBackend) Close() error {
	return r.client.Close()
}
