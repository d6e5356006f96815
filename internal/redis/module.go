package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/vasavigrand/vgbilling/internal/config"
)

// NewClient connects the shared redis instance. Only the redis-backed bill
// sequence uses it; the connection is verified up front so a misconfigured
// backend fails at startup rather than on the first issued bill.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
