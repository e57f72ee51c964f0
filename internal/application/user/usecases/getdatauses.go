package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

type GetDataUsesUseCase struct {
	users          *UserLocator
	credentialRepo credential.Repository
	logger         logger.Interface
}

func NewGetDataUsesUseCase(
	users *UserLocator,
	credentialRepo credential.Repository,
	logger logger.Interface,
) *GetDataUsesUseCase {
	return &GetDataUsesUseCase{
		users:          users,
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

// Execute lists every credential that may consume the user's data. Opt-outs
// only change the share flag, never whether a consumer is listed.
func (uc *GetDataUsesUseCase) Execute(ctx context.Context, subject Subject) ([]dto.DataUseResponse, error) {
	u, err := uc.users.Ensure(ctx, subject)
	if err != nil {
		return nil, err
	}

	uses, err := uc.credentialRepo.ListDataUses(ctx, u.TenantID(), u.ID())
	if err != nil {
		uc.logger.Errorw("an error occurred when getting the data uses", "user_id", u.ID(), "error", err)
		return nil, errors.NewStorageError("failed to get data uses", err)
	}
	return dto.ToDataUseResponses(uses), nil
}
