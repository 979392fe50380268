package entitlement

import (
	"fmt"
	"strings"
	"time"
)

// AccessStatus is the derived state of a (tenant, product) pair.
type AccessStatus string

const (
	StatusAbsent  AccessStatus = "absent"
	StatusRevoked AccessStatus = "revoked"
	StatusGranted AccessStatus = "granted"
)

// Credentials is a freshly issued token/link pair. Only the token hash is persisted.
type Credentials struct {
	TokenHash  string
	AccessLink string
}

func (c Credentials) validate() error {
	if c.TokenHash == "" {
		return fmt.Errorf("access token is required")
	}
	if c.AccessLink == "" {
		return fmt.Errorf("access link is required")
	}
	return nil
}

// Entitlement grants one tenant access to one product. There is at most one per pair;
// grant and revoke mutate it in place so history survives.
type Entitlement struct {
	id           uint
	tenantID     string
	productID    string
	hasAccess    bool
	grantedAt    *time.Time
	grantedBy    string
	revokedAt    *time.Time
	revokedBy    string
	tokenHash    string
	accessLink   string
	lastAccessed *time.Time
	accessCount  int64
	usage        UsageSummary
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewEntitlement creates a granted entitlement for a pair that has never had one.
func NewEntitlement(tenantID, productID, grantedBy string, creds Credentials, now time.Time) (*Entitlement, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if err := creds.validate(); err != nil {
		return nil, err
	}

	now = now.UTC()
	grantedAt := now
	return &Entitlement{
		tenantID:   tenantID,
		productID:  productID,
		hasAccess:  true,
		grantedAt:  &grantedAt,
		grantedBy:  grantedBy,
		tokenHash:  creds.TokenHash,
		accessLink: creds.AccessLink,
		usage:      NewUsageSummary(),
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID           uint
	TenantID     string
	ProductID    string
	HasAccess    bool
	GrantedAt    *time.Time
	GrantedBy    string
	RevokedAt    *time.Time
	RevokedBy    string
	TokenHash    string
	AccessLink   string
	LastAccessed *time.Time
	AccessCount  int64
	Usage        UsageSummary
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructEntitlement(p ReconstructParams) (*Entitlement, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("entitlement ID cannot be zero")
	}
	if p.TenantID == "" || p.ProductID == "" {
		return nil, fmt.Errorf("entitlement tenant and product are required")
	}
	return &Entitlement{
		id:           p.ID,
		tenantID:     p.TenantID,
		productID:    p.ProductID,
		hasAccess:    p.HasAccess,
		grantedAt:    p.GrantedAt,
		grantedBy:    p.GrantedBy,
		revokedAt:    p.RevokedAt,
		revokedBy:    p.RevokedBy,
		tokenHash:    p.TokenHash,
		accessLink:   p.AccessLink,
		lastAccessed: p.LastAccessed,
		accessCount:  p.AccessCount,
		usage:        p.Usage,
		version:      p.Version,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

// Grant re-enables access with fresh credentials. grantedAt/grantedBy are refreshed only
// when unset or older than staleWindow. It reports whether access went from off to on.
func (e *Entitlement) Grant(grantedBy string, creds Credentials, now time.Time, staleWindow time.Duration) (bool, error) {
	if err := creds.validate(); err != nil {
		return false, err
	}
	now = now.UTC()
	activated := !e.hasAccess

	e.hasAccess = true
	e.revokedAt = nil
	e.revokedBy = ""
	e.tokenHash = creds.TokenHash
	e.accessLink = creds.AccessLink
	if e.grantedAt == nil || now.Sub(*e.grantedAt) > staleWindow {
		grantedAt := now
		e.grantedAt = &grantedAt
		e.grantedBy = grantedBy
	}
	e.updatedAt = now
	e.version++
	return activated, nil
}

// Revoke turns access off. Revoking an already revoked entitlement is a no-op that
// keeps the original stamp; the return value reports whether anything changed.
func (e *Entitlement) Revoke(revokedBy string, now time.Time) bool {
	if !e.hasAccess {
		return false
	}
	now = now.UTC()
	e.hasAccess = false
	e.revokedAt = &now
	e.revokedBy = revokedBy
	e.updatedAt = now
	e.version++
	return true
}

// Regenerate rotates credentials on a granted entitlement.
func (e *Entitlement) Regenerate(creds Credentials, now time.Time) error {
	if !e.hasAccess {
		return ErrGrantRequired
	}
	if err := creds.validate(); err != nil {
		return err
	}
	e.tokenHash = creds.TokenHash
	e.accessLink = creds.AccessLink
	e.updatedAt = now.UTC()
	e.version++
	return nil
}

// RecordAccess counts one use under the given business day and month keys.
// It reports false, and changes nothing, when access is not granted.
func (e *Entitlement) RecordAccess(dayKey, monthKey string, now time.Time) bool {
	if !e.hasAccess {
		return false
	}
	now = now.UTC()
	e.lastAccessed = &now
	e.accessCount++
	e.usage.Record(dayKey, monthKey)
	e.updatedAt = now
	e.version++
	return true
}

// MatchesToken reports whether tokenHash is the current credential.
func (e *Entitlement) MatchesToken(tokenHash string) bool {
	return tokenHash != "" && e.tokenHash == tokenHash
}

func (e *Entitlement) Status() AccessStatus {
	if e.hasAccess {
		return StatusGranted
	}
	return StatusRevoked
}

func (e *Entitlement) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entitlement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entitlement ID cannot be zero")
	}
	e.id = id
	return nil
}

// SetAccessLink replaces the link after a store-level collision on create.
func (e *Entitlement) SetAccessLink(link string) {
	e.accessLink = link
}

func (e *Entitlement) ID() uint                 { return e.id }
func (e *Entitlement) TenantID() string         { return e.tenantID }
func (e *Entitlement) ProductID() string        { return e.productID }
func (e *Entitlement) HasAccess() bool          { return e.hasAccess }
func (e *Entitlement) GrantedAt() *time.Time    { return e.grantedAt }
func (e *Entitlement) GrantedBy() string        { return e.grantedBy }
func (e *Entitlement) RevokedAt() *time.Time    { return e.revokedAt }
func (e *Entitlement) RevokedBy() string        { return e.revokedBy }
func (e *Entitlement) TokenHash() string        { return e.tokenHash }
func (e *Entitlement) AccessLink() string       { return e.accessLink }
func (e *Entitlement) LastAccessed() *time.Time { return e.lastAccessed }
func (e *Entitlement) AccessCount() int64       { return e.accessCount }
func (e *Entitlement) Usage() UsageSummary      { return e.usage }
func (e *Entitlement) Version() int             { return e.version }
func (e *Entitlement) CreatedAt() time.Time     { return e.createdAt }
func (e *Entitlement) UpdatedAt() time.Time     { return e.updatedAt }
