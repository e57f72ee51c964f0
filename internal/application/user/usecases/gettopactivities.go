package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

type GetTopActivitiesUseCase struct {
	users         *UserLocator
	statementRepo statement.Repository
	logger        logger.Interface
}

func NewGetTopActivitiesUseCase(
	users *UserLocator,
	statementRepo statement.Repository,
	logger logger.Interface,
) *GetTopActivitiesUseCase {
	return &GetTopActivitiesUseCase{
		users:         users,
		statementRepo: statementRepo,
		logger:        logger,
	}
}

func (uc *GetTopActivitiesUseCase) Execute(ctx context.Context, subject Subject) ([]dto.ActivityResponse, error) {
	u, err := uc.users.Visible(ctx, subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return []dto.ActivityResponse{}, nil
	}

	counts, err := uc.statementRepo.TopActivities(ctx, ownerOf(u))
	if err != nil {
		uc.logger.Errorw("an error occurred when getting the top activities", "user_id", u.ID(), "error", err)
		return nil, errors.NewStorageError("failed to get top activities", err)
	}
	return dto.ToActivityResponses(counts), nil
}
