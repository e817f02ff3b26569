package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationOutbox stores notifications until they are published.
type NotificationOutbox interface {
	Add(ctx context.Context, n notification.Notification) error

	// Pending returns up to limit unpublished notifications, oldest first.
	Pending(ctx context.Context, limit int) ([]notification.Notification, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers notifications to the messaging system.
type EventPublisher interface {
	Publish(ctx context.Context, notifications ...notification.Notification) error
}
