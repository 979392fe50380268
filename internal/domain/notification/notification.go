package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/id"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityInfo, SeverityWarning:
		return true
	}
	return false
}

type Category string

const (
	CategoryQuotation   Category = "quotation"
	CategoryEntitlement Category = "entitlement"
)

const (
	maxTitleLength   = 200
	maxMessageLength = 5000
)

// Notification is a message to a tenant's back-office inbox.
type Notification struct {
	id        string
	tenantID  string
	category  Category
	severity  Severity
	title     string
	message   string
	relatedID string
	readAt    *time.Time
	createdAt time.Time
}

func NewNotification(tenantID string, category Category, severity Severity, title, message, relatedID string) (*Notification, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid notification severity: %s", severity)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("notification title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("notification title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("notification message exceeds maximum length of %d characters", maxMessageLength)
	}

	notificationID, err := id.NewNotificationID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate notification id: %w", err)
	}

	return &Notification{
		id:        notificationID,
		tenantID:  tenantID,
		category:  category,
		severity:  severity,
		title:     title,
		message:   message,
		relatedID: relatedID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(notificationID, tenantID string, category Category, severity Severity,
	title, message, relatedID string, readAt *time.Time, createdAt time.Time) (*Notification, error) {
	if notificationID == "" {
		return nil, fmt.Errorf("notification ID cannot be empty")
	}
	return &Notification{
		id:        notificationID,
		tenantID:  tenantID,
		category:  category,
		severity:  severity,
		title:     title,
		message:   message,
		relatedID: relatedID,
		readAt:    readAt,
		createdAt: createdAt,
	}, nil
}

// MarkRead is idempotent; the first read time is kept.
func (n *Notification) MarkRead(now time.Time) {
	if n.readAt != nil {
		return
	}
	t := now.UTC()
	n.readAt = &t
}

func (n *Notification) ID() string           { return n.id }
func (n *Notification) TenantID() string     { return n.tenantID }
func (n *Notification) Category() Category   { return n.category }
func (n *Notification) Severity() Severity   { return n.severity }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) RelatedID() string    { return n.relatedID }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) IsRead() bool         { return n.readAt != nil }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
