package handlers

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/application/user/usecases"
)

// Use case interfaces for UserHandler

type getUserProfileUseCase interface {
	Execute(ctx context.Context, subject usecases.Subject) (*dto.UserResponse, error)
}

type listRecentActivitiesUseCase interface {
	Execute(ctx context.Context, query usecases.ListRecentActivitiesQuery) (*dto.RecentActivitiesResponse, error)
}

type getTotalActivitiesUseCase interface {
	Execute(ctx context.Context, subject usecases.Subject) ([]dto.PeriodResponse, error)
}

type getTopActivitiesUseCase interface {
	Execute(ctx context.Context, subject usecases.Subject) ([]dto.ActivityResponse, error)
}

type getDataSourcesUseCase interface {
	Execute(ctx context.Context, subject usecases.Subject) ([]dto.DataSourceResponse, error)
}

type getDataUsesUseCase interface {
	Execute(ctx context.Context, subject usecases.Subject) ([]dto.DataUseResponse, error)
}

type updateDataShareUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateDataShareCommand) error
}
