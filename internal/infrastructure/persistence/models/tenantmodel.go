package models

import (
	"time"

	"github.com/lrsproject/lrs/internal/shared/constants"
)

// TenantModel represents the database persistence model for tenants
type TenantModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TenantModel) TableName() string {
	return constants.TableTenants
}
