package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/admin/dto"
	"github.com/lrsproject/lrs/internal/domain/tenant"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

type ListTenantsUseCase struct {
	tenants tenant.Repository
	logger  logger.Interface
}

func NewListTenantsUseCase(tenants tenant.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{tenants: tenants, logger: logger}
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context) ([]*dto.TenantResponse, error) {
	tenants, err := uc.tenants.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tenants", "error", err)
		return nil, errors.NewStorageError("Failed to list tenants", err)
	}
	return dto.ToTenantResponseList(tenants), nil
}
