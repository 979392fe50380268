package product

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductExists    = errors.New("product already exists")
	ErrInvalidProductID = errors.New("product id must be a lower-case slug of 2-50 characters")
)

// InUseError is returned when a product still has entitled tenants.
type InUseError struct {
	ProductID       string
	EntitledTenants int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("product %s is in use by %d entitled tenant(s)", e.ProductID, e.EntitledTenants)
}
