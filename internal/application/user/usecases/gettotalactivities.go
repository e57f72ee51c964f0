package usecases

import (
	"context"
	"time"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

type GetTotalActivitiesUseCase struct {
	users         *UserLocator
	statementRepo statement.Repository
	logger        logger.Interface
	now           func() time.Time
}

func NewGetTotalActivitiesUseCase(
	users *UserLocator,
	statementRepo statement.Repository,
	logger logger.Interface,
) *GetTotalActivitiesUseCase {
	return &GetTotalActivitiesUseCase{
		users:         users,
		statementRepo: statementRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// Execute returns one entry per calendar month between the user's first
// and last statement, zero-filled.
func (uc *GetTotalActivitiesUseCase) Execute(ctx context.Context, subject Subject) ([]dto.PeriodResponse, error) {
	u, err := uc.users.Visible(ctx, subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return []dto.PeriodResponse{}, nil
	}

	counts, err := uc.statementRepo.MonthlyTotals(ctx, ownerOf(u))
	if err != nil {
		uc.logger.Errorw("an error occurred when getting the total activities per month", "user_id", u.ID(), "error", err)
		return nil, errors.NewStorageError("failed to get total activities", err)
	}

	return dto.ToPeriodResponses(statement.FillMonths(counts, uc.now())), nil
}
