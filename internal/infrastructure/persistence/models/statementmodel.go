package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lrsproject/lrs/internal/shared/constants"
)

// StatementModel represents the database persistence model for statements.
// The uuid primary key makes ingestion idempotent across all tenants.
type StatementModel struct {
	UUID             string           `gorm:"column:uuid;primaryKey;size:64"`
	Statement        datatypes.JSON   `gorm:"not null"`
	Verb             string           `gorm:"not null;size:255"`
	Timestamp        time.Time        `gorm:"not null;index:idx_statements_owner_time,priority:3"`
	ActivityType     string           `gorm:"size:255"`
	ActorType        string           `gorm:"size:64"`
	StatementType    string           `gorm:"not null;size:16"`
	StatementVersion string           `gorm:"size:16"`
	Voided           bool             `gorm:"not null;default:false"`
	TenantID         uint             `gorm:"not null;index:idx_statements_owner_time,priority:1"`
	Tenant           *TenantModel     `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	UserID           *uint            `gorm:"index:idx_statements_owner_time,priority:2"`
	User             *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CredentialID     uint             `gorm:"not null;index:idx_statements_credential"`
	Credential       *CredentialModel `gorm:"foreignKey:CredentialID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
}

// TableName specifies the table name for GORM
func (StatementModel) TableName() string {
	return constants.TableStatements
}
