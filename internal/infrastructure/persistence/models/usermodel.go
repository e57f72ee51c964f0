package models

import (
	"time"

	"github.com/lrsproject/lrs/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
// (tenant_id, external_id) is unique so concurrent first writes of the
// same actor collapse into one row.
type UserModel struct {
	ID         uint         `gorm:"primarykey"`
	TenantID   uint         `gorm:"not null;uniqueIndex:idx_users_tenant_external,priority:1"`
	Tenant     *TenantModel `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	ExternalID string       `gorm:"not null;size:255;uniqueIndex:idx_users_tenant_external,priority:2"`
	Name       string       `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
