package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

type GetDataSourcesUseCase struct {
	users         *UserLocator
	statementRepo statement.Repository
	logger        logger.Interface
}

func NewGetDataSourcesUseCase(
	users *UserLocator,
	statementRepo statement.Repository,
	logger logger.Interface,
) *GetDataSourcesUseCase {
	return &GetDataSourcesUseCase{
		users:         users,
		statementRepo: statementRepo,
		logger:        logger,
	}
}

// Execute counts the user's statements per writing credential.
func (uc *GetDataSourcesUseCase) Execute(ctx context.Context, subject Subject) ([]dto.DataSourceResponse, error) {
	u, err := uc.users.Visible(ctx, subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return []dto.DataSourceResponse{}, nil
	}

	counts, err := uc.statementRepo.DataSources(ctx, ownerOf(u))
	if err != nil {
		uc.logger.Errorw("an error occurred when getting the data sources", "user_id", u.ID(), "error", err)
		return nil, errors.NewStorageError("failed to get data sources", err)
	}
	return dto.ToDataSourceResponses(counts), nil
}
