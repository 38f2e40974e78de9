package repository

import (
	"context"

	"github.com/rentwise/rentwise/internal/domain/entity"
)

// EventPublisher puts lifecycle events on the notification channel.
// Publishing is fire-and-forget from the caller's point of view: failures
// are logged by the caller and never surfaced further.
type EventPublisher interface {
	Publish(ctx context.Context, ev *entity.TenantRequestEvent) error
}

// Broadcaster re-publishes a lifecycle event on the observer-facing
// broadcast channel consumed by connected dashboards.
type Broadcaster interface {
	Broadcast(ctx context.Context, ev *entity.TenantRequestEvent) error
}
