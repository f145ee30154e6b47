package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// DefaultConnectTimeout is the timeout for the initial connection ping.
	DefaultConnectTimeout = 5 * time.Second
)

// Config holds Redis connection settings. Only standalone mode is supported.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// IRedis is the subset of the Redis client the service depends on.
type IRedis interface {
	Publish(ctx context.Context, channel string, payload any) error
	PSubscribe(ctx context.Context, pattern string) *goredis.PubSub
	Ping(ctx context.Context) error
	Close() error
	GetClient() *goredis.Client
}

type redisImpl struct {
	client *goredis.Client
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg Config) (IRedis, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, ErrInvalidPort
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisImpl{client: client}, nil
}

func (r *redisImpl) Publish(ctx context.Context, channel string, payload any) error {
	return r.client.Publish(ctx, channel, payload).Err()
}

func (r *redisImpl) PSubscribe(ctx context.Context, pattern string) *goredis.PubSub {
	return r.client.PSubscribe(ctx, pattern)
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}

func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
