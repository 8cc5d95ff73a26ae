package database

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient wraps the Redis client used for usage counters
type RedisClient struct {
	Client *redis.Client
}

// InitRedis initializes the Redis connection and checks it with a ping
func InitRedis(ctx context.Context, redisURI string) (*RedisClient, error) {
	opts, err := redis.ParseURL(redisURI)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisClient{Client: client}, nil
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
