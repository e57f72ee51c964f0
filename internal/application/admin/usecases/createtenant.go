package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/admin/dto"
	"github.com/lrsproject/lrs/internal/domain/tenant"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/services/sanitize"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

type CreateTenantUseCase struct {
	tenants   tenant.Repository
	sanitizer sanitize.Sanitizer
	logger    logger.Interface
}

func NewCreateTenantUseCase(tenants tenant.Repository, sanitizer sanitize.Sanitizer, logger logger.Interface) *CreateTenantUseCase {
	return &CreateTenantUseCase{tenants: tenants, sanitizer: sanitizer, logger: logger}
}

func (uc *CreateTenantUseCase) Execute(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	req.Name = uc.sanitizer.Text(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	t, err := tenant.NewTenant(req.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.tenants.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create tenant", "error", err)
		return nil, errors.NewStorageError("Failed to create tenant", err)
	}

	uc.logger.Infow("tenant created", "tenant_id", t.ID(), "name", t.Name())
	return dto.ToTenantResponse(t), nil
}
