package usecases

import (
	"context"

	statementdto "github.com/lrsproject/lrs/internal/application/statement/dto"
	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/constants"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

type ListRecentActivitiesQuery struct {
	Subject Subject
	Limit   int
	Offset  int
}

type ListRecentActivitiesUseCase struct {
	users         *UserLocator
	statementRepo statement.Repository
	logger        logger.Interface
}

func NewListRecentActivitiesUseCase(
	users *UserLocator,
	statementRepo statement.Repository,
	logger logger.Interface,
) *ListRecentActivitiesUseCase {
	return &ListRecentActivitiesUseCase{
		users:         users,
		statementRepo: statementRepo,
		logger:        logger,
	}
}

// Execute returns the newest statements first. Limit is clamped to
// [constants.MinLimit, constants.MaxLimit] and a negative offset is
// treated as zero.
func (uc *ListRecentActivitiesUseCase) Execute(ctx context.Context, query ListRecentActivitiesQuery) (*dto.RecentActivitiesResponse, error) {
	limit := min(max(query.Limit, constants.MinLimit), constants.MaxLimit)
	offset := max(query.Offset, 0)

	u, err := uc.users.Visible(ctx, query.Subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return dto.EmptyRecentActivities(offset), nil
	}

	statements, total, err := uc.statementRepo.ListRecent(ctx, ownerOf(u), limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to get the most recent learning activities", "user_id", u.ID(), "error", err)
		return nil, errors.NewStorageError("failed to list recent activities", err)
	}

	return &dto.RecentActivitiesResponse{
		Offset:  offset,
		Total:   total,
		Results: statementdto.ToStatementResponseList(statements),
	}, nil
}
