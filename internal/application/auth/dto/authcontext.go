package dto

import (
	"strconv"

	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

// AuthContext is the authenticated caller attached to a request. It proves
// identity only; each endpoint checks the permission it needs.
type AuthContext struct {
	CredentialID uint
	Name         string
	TenantID     *uint
	Permissions  credential.Permissions
}

func NewAuthContext(c *credential.Credential) *AuthContext {
	return &AuthContext{
		CredentialID: c.ID(),
		Name:         c.Name(),
		TenantID:     c.TenantID(),
		Permissions:  c.Permissions(),
	}
}

// IsGlobal reports whether the caller spans all tenants.
func (a *AuthContext) IsGlobal() bool {
	return a.TenantID == nil
}

// EffectiveTenant returns the tenant a read acts on. Tenant-bound callers
// always act on their own tenant; global callers must name one.
func (a *AuthContext) EffectiveTenant(requested string) (uint, error) {
	if a.TenantID != nil {
		return *a.TenantID, nil
	}
	if requested == "" {
		return 0, errors.NewBadRequestError("tenant_id is required for cross-tenant credentials")
	}
	id, err := strconv.ParseUint(requested, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("tenant_id must be a positive integer")
	}
	return uint(id), nil
}
