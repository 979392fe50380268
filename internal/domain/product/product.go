package product

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lumenworks/backoffice/internal/shared/biztime"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,48}[a-z0-9]$`)

// Counters are maintained by atomic store-level increments, never through Update.
type Counters struct {
	TotalEnterprises  int64
	ActiveEnterprises int64
	TotalAccessCount  int64
}

// Product is a catalog entry a tenant can be entitled to.
type Product struct {
	id          string
	name        string
	description string
	active      bool
	counters    Counters
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct validates the slug id; the id is immutable afterwards.
func NewProduct(productID, name, description string) (*Product, error) {
	productID = strings.TrimSpace(productID)
	if !slugPattern.MatchString(productID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProductID, productID)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Product{
		id:          productID,
		name:        strings.TrimSpace(name),
		description: description,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProduct(productID, name, description string, active bool, counters Counters,
	createdAt, updatedAt time.Time) (*Product, error) {
	if productID == "" {
		return nil, fmt.Errorf("product ID cannot be empty")
	}
	return &Product{
		id:          productID,
		name:        name,
		description: description,
		active:      active,
		counters:    counters,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("product name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("product name too long (max 100 characters)")
	}
	return nil
}

// UpdateDisplay changes the mutable display metadata. Nil fields are left untouched.
func (p *Product) UpdateDisplay(name, description *string, active *bool) error {
	if name != nil {
		if err := validateName(*name); err != nil {
			return err
		}
		p.name = strings.TrimSpace(*name)
	}
	if description != nil {
		p.description = *description
	}
	if active != nil {
		p.active = *active
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}

// EnsureDeletable refuses deletion while any tenant is entitled.
func (p *Product) EnsureDeletable(entitledTenants int64) error {
	if entitledTenants > 0 {
		return &InUseError{ProductID: p.id, EntitledTenants: entitledTenants}
	}
	return nil
}

func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) IsActive() bool       { return p.active }
func (p *Product) Counters() Counters   { return p.counters }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
