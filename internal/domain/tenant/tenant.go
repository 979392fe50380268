package tenant

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/id"
)

// Well-known products mirrored as boolean flags on the tenant row for older consumers.
const (
	ProductCRM      = "crm"
	ProductHR       = "hr"
	ProductJobBoard = "job-board"
)

var legacyProducts = map[string]bool{
	ProductCRM:      true,
	ProductHR:       true,
	ProductJobBoard: true,
}

// IsLegacyMirrored reports whether productID has a mirror flag on the tenant.
func IsLegacyMirrored(productID string) bool {
	return legacyProducts[productID]
}

// LegacyAccess is the mirror of hasAccess for the well-known products.
type LegacyAccess struct {
	CRM      bool
	HR       bool
	JobBoard bool
}

// Get returns the mirror flag for productID, false when productID is not mirrored.
func (l LegacyAccess) Get(productID string) bool {
	switch productID {
	case ProductCRM:
		return l.CRM
	case ProductHR:
		return l.HR
	case ProductJobBoard:
		return l.JobBoard
	}
	return false
}

// Tenant is an operator-managed customer account.
type Tenant struct {
	id             string
	organizationID string
	name           string
	email          string
	legacy         LegacyAccess
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTenant(name, email, organizationID string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("tenant name too long (max 200 characters)")
	}
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid tenant email: %s", email)
		}
	}

	tenantID, err := id.NewTenantID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant id: %w", err)
	}
	if strings.TrimSpace(organizationID) == "" {
		organizationID = tenantID
	}

	now := biztime.NowUTC()
	return &Tenant{
		id:             tenantID,
		organizationID: strings.TrimSpace(organizationID),
		name:           name,
		email:          email,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTenant(tenantID, organizationID, name, email string, legacy LegacyAccess,
	createdAt, updatedAt time.Time) (*Tenant, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant ID cannot be empty")
	}
	return &Tenant{
		id:             tenantID,
		organizationID: organizationID,
		name:           name,
		email:          email,
		legacy:         legacy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Tenant) ID() string                 { return t.id }
func (t *Tenant) OrganizationID() string     { return t.organizationID }
func (t *Tenant) Name() string               { return t.name }
func (t *Tenant) Email() string              { return t.email }
func (t *Tenant) LegacyAccess() LegacyAccess { return t.legacy }
func (t *Tenant) CreatedAt() time.Time       { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time       { return t.updatedAt }
