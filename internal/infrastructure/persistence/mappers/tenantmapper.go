package mappers

import (
	"github.com/lrsproject/lrs/internal/domain/tenant"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
)

// TenantMapper handles the conversion between Tenant domain entities and persistence models.
type TenantMapper interface {
	ToModel(t *tenant.Tenant) *models.TenantModel
	ToDomain(model *models.TenantModel) *tenant.Tenant
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToModel(t *tenant.Tenant) *models.TenantModel {
	return &models.TenantModel{
		ID:        t.ID(),
		Name:      t.Name(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func (m *TenantMapperImpl) ToDomain(model *models.TenantModel) *tenant.Tenant {
	if model == nil {
		return nil
	}
	return tenant.ReconstructTenant(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}
