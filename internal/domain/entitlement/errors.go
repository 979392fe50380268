package entitlement

import "errors"

var (
	ErrEntitlementNotFound    = errors.New("entitlement not found")
	ErrGrantRequired          = errors.New("grant access first")
	ErrConcurrentModification = errors.New("entitlement was modified concurrently")
	// ErrAccessLinkTaken is returned by the store when the unique link index rejects a write.
	ErrAccessLinkTaken = errors.New("access link already in use")
	// ErrEntitlementExists is returned when a concurrent create won the (tenant, product) race.
	ErrEntitlementExists = errors.New("entitlement already exists")
)
