package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
	"github.com/lrsproject/lrs/internal/shared/db"
)

type OptOutRepository struct {
	db *gorm.DB
}

func NewOptOutRepository(db *gorm.DB) *OptOutRepository {
	return &OptOutRepository{db: db}
}

func (r *OptOutRepository) Exists(ctx context.Context, userID, credentialID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OptOutModel{}).
		Where("user_id = ? AND credential_id = ?", userID, credentialID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check opt-out: %w", err)
	}
	return count > 0, nil
}

func (r *OptOutRepository) Add(ctx context.Context, userID, credentialID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "credential_id"}},
			DoNothing: true,
		}).
		Create(&models.OptOutModel{UserID: userID, CredentialID: credentialID}).Error
	if err != nil {
		return fmt.Errorf("failed to add opt-out: %w", err)
	}
	return nil
}

func (r *OptOutRepository) Remove(ctx context.Context, userID, credentialID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND credential_id = ?", userID, credentialID).
		Delete(&models.OptOutModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove opt-out: %w", err)
	}
	return nil
}
