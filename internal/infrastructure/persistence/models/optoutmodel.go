package models

import (
	"time"

	"github.com/lrsproject/lrs/internal/shared/constants"
)

// OptOutModel represents a user's veto against one credential.
type OptOutModel struct {
	ID           uint             `gorm:"primarykey"`
	UserID       uint             `gorm:"not null;uniqueIndex:idx_opt_outs_user_credential,priority:1"`
	User         *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CredentialID uint             `gorm:"not null;uniqueIndex:idx_opt_outs_user_credential,priority:2;index:idx_opt_outs_credential"`
	Credential   *CredentialModel `gorm:"foreignKey:CredentialID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (OptOutModel) TableName() string {
	return constants.TableOptOuts
}
