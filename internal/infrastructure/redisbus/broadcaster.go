// Package redisbus is the observer-facing broadcast channel: lifecycle
// events are re-published on a Redis pub/sub channel that connected
// dashboards consume through the SSE endpoint.
package redisbus

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/internal/domain/repository"
)

// DefaultChannel is the single logical broadcast topic.
const DefaultChannel = "notifications"

type Broadcaster struct {
	rdb     *redis.Client
	channel string
}

func NewBroadcaster(rdb *redis.Client, channel string) *Broadcaster {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Broadcaster{rdb: rdb, channel: channel}
}

// Broadcast publishes the event unmodified to the channel.
func (b *Broadcaster) Broadcast(ctx context.Context, ev *entity.TenantRequestEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, payload).Err()
}

// Subscribe attaches to the channel; the caller owns the returned PubSub.
func (b *Broadcaster) Subscribe(ctx context.Context) *redis.PubSub {
	return b.rdb.Subscribe(ctx, b.channel)
}

var _ repository.Broadcaster = (*Broadcaster)(nil)
