package dto

import (
	"time"

	"github.com/lumenworks/backoffice/internal/domain/notification"
)

type NotificationResponse struct {
	ID        string     `json:"id"`
	Category  string     `json:"category"`
	Severity  string     `json:"severity"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	RelatedID string     `json:"related_id,omitempty"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ListNotificationsRequest struct {
	TenantID   string
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListResponse struct {
	Items    []*NotificationResponse `json:"items"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func ToNotificationResponse(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID(),
		Category:  string(n.Category()),
		Severity:  string(n.Severity()),
		Title:     n.Title(),
		Message:   n.Message(),
		RelatedID: n.RelatedID(),
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationResponseList(items []*notification.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}
