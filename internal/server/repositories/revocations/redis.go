package revocations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository keeps each revoked jti as a key that expires together
// with the token, so Prune has nothing to do.
type RedisRepository struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewRedisRepository(client redis.UniversalClient) *RedisRepository {
	return &RedisRepository{
		client: client,
		prefix: "revoked:",
		now:    time.Now,
	}
}

func (r *RedisRepository) key(jti string) string {
	return r.prefix + jti
}

func (r *RedisRepository) Record(ctx context.Context, jti string, expiresAt time.Time) (bool, error) {
	if jti == "" {
		return false, errors.New("revocations: empty jti")
	}

	// Already-expired tokens still need a record so that a second logout is
	// reported; keep them for a second.
	ttl := expiresAt.Sub(r.now())
	if ttl < time.Second {
		ttl = time.Second
	}

	ok, err := r.client.SetNX(ctx, r.key(jti), expiresAt.Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return ok, nil
}

func (r *RedisRepository) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return n > 0, nil
}

func (r *RedisRepository) Prune(context.Context, time.Time) (int64, error) {
	return 0, nil
}
