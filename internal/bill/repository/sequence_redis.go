package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/vasavigrand/vgbilling/internal/bill/domain"
)

type redisSequence struct {
	client *redis.Client
	key    string
}

// NewRedisSequence keeps the counter in a redis key via INCR. A missing key
// increments to 1, so the first issued bill is number 1 here too.
func NewRedisSequence(client *redis.Client, key string) domain.SequenceGenerator {
	return &redisSequence{client: client, key: key}
}

func (s *redisSequence) Next(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, s.key).Result()
}

func (s *redisSequence) Reset(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
