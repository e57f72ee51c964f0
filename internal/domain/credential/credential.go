// Package credential models the authentication principals used by
// integrations that write or read learning activity.
package credential

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 2000
)

// Permissions are the per-credential capability flags.
type Permissions struct {
	Read      bool
	Write     bool
	Datashare bool
	Anonymous bool
}

type Credential struct {
	id          uint
	key         string
	secretHash  string
	name        string
	description string
	tenantID    *uint
	permissions Permissions
	createdAt   time.Time
	updatedAt   time.Time
}

// NewCredential creates a credential. A nil tenantID makes it a global,
// cross-tenant consumer.
func NewCredential(key, secretHash, name, description string, tenantID *uint, permissions Permissions) (*Credential, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("credential key is required")
	}
	if secretHash == "" {
		return nil, fmt.Errorf("credential secret hash is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("credential name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("credential name exceeds maximum length of %d characters", maxNameLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("credential description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	now := time.Now().UTC()
	return &Credential{
		key:         key,
		secretHash:  secretHash,
		name:        name,
		description: description,
		tenantID:    tenantID,
		permissions: permissions,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructCredential rebuilds a credential from persistence.
func ReconstructCredential(
	id uint,
	key, secretHash, name, description string,
	tenantID *uint,
	permissions Permissions,
	createdAt, updatedAt time.Time,
) *Credential {
	return &Credential{
		id:          id,
		key:         key,
		secretHash:  secretHash,
		name:        name,
		description: description,
		tenantID:    tenantID,
		permissions: permissions,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Credential) ID() uint                 { return c.id }
func (c *Credential) Key() string              { return c.key }
func (c *Credential) SecretHash() string       { return c.secretHash }
func (c *Credential) Name() string             { return c.name }
func (c *Credential) Description() string      { return c.description }
func (c *Credential) TenantID() *uint          { return c.tenantID }
func (c *Credential) Permissions() Permissions { return c.permissions }
func (c *Credential) CreatedAt() time.Time     { return c.createdAt }
func (c *Credential) UpdatedAt() time.Time     { return c.updatedAt }

// IsGlobal reports whether the credential spans all tenants.
func (c *Credential) IsGlobal() bool {
	return c.tenantID == nil
}

func (c *Credential) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("credential ID is already set")
	}
	c.id = id
	return nil
}
