package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lrsproject/lrs/internal/domain/tenant"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/mappers"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
	"github.com/lrsproject/lrs/internal/shared/db"
)

type TenantRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db, mapper: mappers.NewTenantMapper()}
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *TenantRepository) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *TenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	var list []*models.TenantModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	result := make([]*tenant.Tenant, 0, len(list))
	for _, model := range list {
		result = append(result, r.mapper.ToDomain(model))
	}
	return result, nil
}
