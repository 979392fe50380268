package notification

import (
	"context"
	"errors"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// GetByID returns nil, nil when the notification does not exist.
	GetByID(ctx context.Context, notificationID string) (*Notification, error)
	ListByTenant(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, n *Notification) error
	CountUnread(ctx context.Context, tenantID string) (int64, error)
}

type ListFilter struct {
	TenantID   string
	UnreadOnly bool
	Page       int
	PageSize   int
}
