package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GoRedisClient struct holds the Redis client and context
type GoRedisClient struct {
	client *redis.Client
	ctx    context.Context
	logger *zap.Logger
}

// NewGoRedisClient wraps an existing go-redis client.
func NewGoRedisClient(ctx context.Context, client *redis.Client, logger *zap.Logger) *GoRedisClient {
	return &GoRedisClient{
		client: client,
		ctx:    ctx,
		logger: logger,
	}
}

// Set sets a key-value pair in Redis without expiry
func (r *GoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GoRedisClient) Get(key string) (string, error) {
	value, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, err
}

// Del removes a key from Redis
func (r *GoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *GoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GoRedisClient) Ping() error {
	if _, err := r.client.Ping(r.ctx).Result(); err != nil {
		return err
	}
	r.logger.Debug("[GoRedisClient] Connected to Redis", zap.String("addr", r.client.Options().Addr))
	return nil
}

// Close closes the underlying connection pool.
func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
