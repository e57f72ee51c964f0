package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lrsproject/lrs/internal/domain/user"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/mappers"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
	"github.com/lrsproject/lrs/internal/shared/db"
)

var userIdentityColumns = []clause.Column{{Name: "tenant_id"}, {Name: "external_id"}}

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db, mapper: mappers.NewUserMapper()}
}

func (r *UserRepository) GetByExternalID(ctx context.Context, tenantID uint, externalID string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND external_id = ?", tenantID, externalID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// Upsert relies on the (tenant_id, external_id) unique index: the insert
// and the profile overwrite happen in one statement, so concurrent first
// writes cannot create two rows.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	model := r.mapper.ToModel(u)
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   userIdentityColumns,
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return r.reload(ctx, u)
}

func (r *UserRepository) GetOrCreate(ctx context.Context, u *user.User) (*user.User, error) {
	model := r.mapper.ToModel(u)
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: userIdentityColumns, DoNothing: true}).
		Create(model).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return r.reload(ctx, u)
}

// reload reads the row back; the auto-increment id reported after an
// upsert is not reliable on every dialect.
func (r *UserRepository) reload(ctx context.Context, u *user.User) (*user.User, error) {
	stored, err := r.GetByExternalID(ctx, u.TenantID(), u.ExternalID())
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("user %q vanished after upsert", u.ExternalID())
	}
	return stored, nil
}
