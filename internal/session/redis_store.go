package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

const keyPrefix = "session:"

// RedisStore persists live session IDs in Redis with the session TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, role domain.Role, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+sessionID, string(role), ttl).Err()
}

func (s *RedisStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}
