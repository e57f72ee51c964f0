package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/domain/tenant"
)

type CreateTenantRequest struct {
	Name string `json:"name" yaml:"name" validate:"required,max=255"`
}

type TenantResponse struct {
	ID        uint      `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

type CreateCredentialRequest struct {
	Name        string `json:"name" yaml:"name" validate:"required,max=255"`
	Description string `json:"description" yaml:"description" validate:"max=2000"`
	// TenantID nil creates a global credential.
	TenantID  *uint `json:"tenant_id" yaml:"tenant_id"`
	Read      bool  `json:"read" yaml:"read"`
	Write     bool  `json:"write" yaml:"write"`
	Datashare bool  `json:"datashare" yaml:"datashare"`
	Anonymous bool  `json:"anonymous" yaml:"anonymous"`
}

type CredentialResponse struct {
	ID          uint      `json:"id" yaml:"id"`
	Key         string    `json:"key" yaml:"key"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	TenantID    *uint     `json:"tenant_id" yaml:"tenant_id"`
	Read        bool      `json:"read" yaml:"read"`
	Write       bool      `json:"write" yaml:"write"`
	Datashare   bool      `json:"datashare" yaml:"datashare"`
	Anonymous   bool      `json:"anonymous" yaml:"anonymous"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// IssuedCredentialResponse carries the clear-text secret. It is produced
// once, at creation.
type IssuedCredentialResponse struct {
	CredentialResponse `yaml:",inline"`
	Secret             string `json:"secret" yaml:"secret"`
}

func ToTenantResponse(t *tenant.Tenant) *TenantResponse {
	return &TenantResponse{ID: t.ID(), Name: t.Name(), CreatedAt: t.CreatedAt()}
}

func ToTenantResponseList(tenants []*tenant.Tenant) []*TenantResponse {
	return lo.Map(tenants, func(t *tenant.Tenant, _ int) *TenantResponse {
		return ToTenantResponse(t)
	})
}

func ToCredentialResponse(c *credential.Credential) *CredentialResponse {
	perms := c.Permissions()
	return &CredentialResponse{
		ID:          c.ID(),
		Key:         c.Key(),
		Name:        c.Name(),
		Description: c.Description(),
		TenantID:    c.TenantID(),
		Read:        perms.Read,
		Write:       perms.Write,
		Datashare:   perms.Datashare,
		Anonymous:   perms.Anonymous,
		CreatedAt:   c.CreatedAt(),
	}
}

func ToCredentialResponseList(credentials []*credential.Credential) []*CredentialResponse {
	return lo.Map(credentials, func(c *credential.Credential, _ int) *CredentialResponse {
		return ToCredentialResponse(c)
	})
}
