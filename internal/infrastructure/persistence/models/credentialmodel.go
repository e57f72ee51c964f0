package models

import (
	"time"

	"github.com/lrsproject/lrs/internal/shared/constants"
)

// CredentialModel represents the database persistence model for credentials.
// Only the bcrypt hash of the secret is stored.
type CredentialModel struct {
	ID              uint         `gorm:"primarykey"`
	Key             string       `gorm:"column:key;uniqueIndex:idx_credentials_key;not null;size:64"`
	SecretHash      string       `gorm:"not null;size:100"`
	Name            string       `gorm:"not null;size:255"`
	Description     string       `gorm:"type:text"`
	ReadPermission  bool         `gorm:"not null;default:false"`
	WritePermission bool         `gorm:"not null;default:false"`
	Datashare       bool         `gorm:"not null;default:false"`
	Anonymous       bool         `gorm:"not null;default:false"`
	TenantID        *uint        `gorm:"index:idx_credentials_tenant"`
	Tenant          *TenantModel `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (CredentialModel) TableName() string {
	return constants.TableCredentials
}
