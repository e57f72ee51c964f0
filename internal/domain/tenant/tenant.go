// Package tenant models the isolation boundary that owns users,
// credentials and statements.
package tenant

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const maxNameLength = 255

type Tenant struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewTenant(name string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("tenant name exceeds maximum length of %d characters", maxNameLength)
	}

	now := time.Now().UTC()
	return &Tenant{name: name, createdAt: now, updatedAt: now}, nil
}

// ReconstructTenant rebuilds a tenant from persistence.
func ReconstructTenant(id uint, name string, createdAt, updatedAt time.Time) *Tenant {
	return &Tenant{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (t *Tenant) ID() uint             { return t.id }
func (t *Tenant) Name() string         { return t.name }
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time { return t.updatedAt }

func (t *Tenant) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID is already set")
	}
	t.id = id
	return nil
}

type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	// GetByID returns nil when the tenant does not exist.
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
}
