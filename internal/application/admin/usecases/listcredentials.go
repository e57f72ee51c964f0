package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/admin/dto"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

type ListCredentialsUseCase struct {
	credentials credential.Repository
	logger      logger.Interface
}

func NewListCredentialsUseCase(credentials credential.Repository, logger logger.Interface) *ListCredentialsUseCase {
	return &ListCredentialsUseCase{credentials: credentials, logger: logger}
}

// Execute lists one tenant's credentials, or all of them when tenantID is
// nil. Secrets are never part of the result.
func (uc *ListCredentialsUseCase) Execute(ctx context.Context, tenantID *uint) ([]*dto.CredentialResponse, error) {
	credentials, err := uc.credentials.List(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list credentials", "error", err)
		return nil, errors.NewStorageError("Failed to list credentials", err)
	}
	return dto.ToCredentialResponseList(credentials), nil
}
