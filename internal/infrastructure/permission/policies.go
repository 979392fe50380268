package permission

import (
	"fmt"

	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// Resources guarded by RequirePermission.
const (
	ResourceEntitlement   = "entitlement"
	ResourceProduct       = "product"
	ResourceProductAccess = "product_access"
	ResourceTenant        = "tenant"
	ResourceQuotation     = "quotation"
	ResourceNotification  = "notification"
)

// Actions.
const (
	ActionGrant      = "grant"
	ActionRevoke     = "revoke"
	ActionRegenerate = "regenerate"
	ActionRead       = "read"
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionExport     = "export"
	ActionTransition = "transition"
	ActionVerify     = "verify"
)

var superAdmin = authorization.RoleSuperAdmin.String()
var tenantAdmin = authorization.RoleAdmin.String()

// DefaultPolicies is the built-in role matrix.
func DefaultPolicies() [][]string {
	return [][]string{
		{superAdmin, ResourceEntitlement, "*"},
		{superAdmin, ResourceProduct, "*"},
		{superAdmin, ResourceTenant, "*"},
		{superAdmin, ResourceQuotation, ActionRead},
		{superAdmin, ResourceQuotation, ActionTransition},

		{tenantAdmin, ResourceProductAccess, ActionVerify},
		{tenantAdmin, ResourceProduct, ActionRead},
		{tenantAdmin, ResourceQuotation, ActionCreate},
		{tenantAdmin, ResourceQuotation, ActionRead},
		{tenantAdmin, ResourceNotification, ActionRead},
		{tenantAdmin, ResourceNotification, ActionUpdate},
	}
}

// InitDefaultPolicies adds any missing default policy; existing ones are left alone.
func InitDefaultPolicies(e *Enforcer, log logger.Interface) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, policy := range DefaultPolicies() {
		has, err := e.enforcer.HasPolicy(policy)
		if err != nil {
			return fmt.Errorf("failed to check policy %v: %w", policy, err)
		}
		if has {
			continue
		}
		if _, err := e.enforcer.AddPolicy(policy); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
		added++
	}

	log.Infow("default permissions initialized", "added", added)
	return nil
}
