package handlers

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/statement/dto"
	"github.com/lrsproject/lrs/internal/application/statement/usecases"
)

// Use case interfaces for StatementHandler

type saveStatementUseCase interface {
	Execute(ctx context.Context, cmd usecases.SaveStatementCommand) (*usecases.SaveStatementResult, error)
}

type getStatementUseCase interface {
	Execute(ctx context.Context, query usecases.GetStatementQuery) (*dto.StatementResponse, error)
}
