package redis

import (
	"context"
	"fmt"

	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
	pkgRedis "dashboard-srv/pkg/redis"
)

const channelPrefix = "dash_events"

func channelFor(userID string) string {
	return fmt.Sprintf("%s:%s", channelPrefix, userID)
}

// Publisher mirrors state-change events through Redis Pub/Sub so every
// service instance can deliver them to its own connected clients.
type Publisher struct {
	client pkgRedis.IRedis
	logger log.Logger
}

// NewPublisher creates a Redis-backed event.Publisher.
func NewPublisher(client pkgRedis.IRedis, logger log.Logger) *Publisher {
	return &Publisher{client: client, logger: logger}
}

// Publish implements event.Publisher.
func (p *Publisher) Publish(ctx context.Context, userID string, ev event.Event) {
	data, err := ev.ToJSON()
	if err != nil {
		p.logger.Errorf(ctx, "internal.event.delivery.redis.Publish: marshal: %v", err)
		return
	}
	if err := p.client.Publish(ctx, channelFor(userID), data); err != nil {
		p.logger.Errorf(ctx, "internal.event.delivery.redis.Publish: %v", err)
	}
}
