// Package user models actors referenced by statements. A user is unique by
// tenant and external id.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const maxExternalIDLength = 255

type User struct {
	id         uint
	tenantID   uint
	externalID string
	name       string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUser(tenantID uint, externalID, name string) (*User, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, fmt.Errorf("external ID is required")
	}
	if len(externalID) > maxExternalIDLength {
		return nil, fmt.Errorf("external ID exceeds maximum length of %d characters", maxExternalIDLength)
	}

	now := time.Now().UTC()
	return &User{
		tenantID:   tenantID,
		externalID: externalID,
		name:       strings.TrimSpace(name),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id, tenantID uint, externalID, name string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:         id,
		tenantID:   tenantID,
		externalID: externalID,
		name:       name,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (u *User) ID() uint             { return u.id }
func (u *User) TenantID() uint       { return u.tenantID }
func (u *User) ExternalID() string   { return u.externalID }
func (u *User) Name() string         { return u.name }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

type Repository interface {
	// GetByExternalID returns nil when the user does not exist.
	GetByExternalID(ctx context.Context, tenantID uint, externalID string) (*User, error)
	// Upsert atomically inserts u or overwrites the profile of the existing
	// (tenant, external id) row, and returns the stored user.
	Upsert(ctx context.Context, u *User) (*User, error)
	// GetOrCreate inserts u only when absent and never touches an existing
	// profile.
	GetOrCreate(ctx context.Context, u *User) (*User, error)
}
