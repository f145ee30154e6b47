package redis

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"dashboard-srv/internal/event/usecase"
	"dashboard-srv/pkg/log"
	pkgRedis "dashboard-srv/pkg/redis"
)

// Subscriber listens on the event channel pattern and forwards events
// published by other instances to this instance's hub.
type Subscriber struct {
	client pkgRedis.IRedis
	hub    *usecase.Hub
	logger log.Logger

	pubsub  *goredis.PubSub
	pattern string

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	maxRetries int
	retryDelay time.Duration

	isActive atomic.Bool
}

// NewSubscriber creates a Redis subscriber bound to the hub.
func NewSubscriber(client pkgRedis.IRedis, hub *usecase.Hub, logger log.Logger) *Subscriber {
	ctx, cancel := context.WithCancel(context.Background())
	return &Subscriber{
		client:     client,
		hub:        hub,
		logger:     logger,
		pattern:    channelPrefix + ":*",
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
		maxRetries: 10,
		retryDelay: 5 * time.Second,
	}
}

// Start subscribes to the pattern and begins forwarding events.
func (s *Subscriber) Start() error {
	s.pubsub = s.client.PSubscribe(s.ctx, s.pattern)
	s.isActive.Store(true)
	s.logger.Infof(s.ctx, "Redis subscriber started, listening on pattern: %s", s.pattern)
	go s.listen()
	return nil
}

// IsActive reports whether the subscriber is running.
func (s *Subscriber) IsActive() bool {
	return s.isActive.Load()
}

func (s *Subscriber) listen() {
	defer close(s.done)

	ch := s.pubsub.Channel()
	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info(context.Background(), "Redis subscriber shutting down...")
			return

		case msg, ok := <-ch:
			if !ok {
				s.logger.Error(s.ctx, "Redis pub/sub channel closed, attempting to reconnect...")
				if err := s.reconnect(); err != nil {
					s.logger.Errorf(s.ctx, "Failed to reconnect to Redis: %v", err)
					s.isActive.Store(false)
					return
				}
				ch = s.pubsub.Channel()
				continue
			}
			s.handleMessage(msg.Channel, msg.Payload)
		}
	}
}

func (s *Subscriber) handleMessage(channel, payload string) {
	// Channel format: dash_events:{user_id}
	parts := strings.SplitN(channel, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		s.logger.Warnf(s.ctx, "Invalid channel format: %s", channel)
		return
	}
	s.hub.SendToUser(parts[1], []byte(payload))
}

func (s *Subscriber) reconnect() error {
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Warnf(s.ctx, "Failed to close stale pub/sub: %v", err)
		}
		s.pubsub = s.client.PSubscribe(s.ctx, s.pattern)
		if _, err := s.pubsub.Receive(s.ctx); err != nil {
			lastErr = err
			s.logger.Warnf(s.ctx, "Reconnect attempt %d/%d failed: %v", attempt, s.maxRetries, err)
			select {
			case <-s.ctx.Done():
				return s.ctx.Err()
			case <-time.After(s.retryDelay):
			}
			continue
		}
		s.logger.Infof(s.ctx, "Redis subscriber reconnected on attempt %d", attempt)
		return nil
	}
	return lastErr
}

// Shutdown stops the subscriber and waits for the listen loop to exit.
func (s *Subscriber) Shutdown(ctx context.Context) error {
	s.cancel()
	s.isActive.Store(false)
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Warnf(context.Background(), "Failed to close pub/sub: %v", err)
		}
	}
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
