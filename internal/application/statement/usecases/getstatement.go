package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/statement/dto"
	"github.com/lrsproject/lrs/internal/application/statement/format"
	"github.com/lrsproject/lrs/internal/domain/optout"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

const MsgStatementNotFound = "Could not find a learning activity statement"

type GetStatementQuery struct {
	UUID         string
	TenantID     uint
	CredentialID uint
}

type GetStatementUseCase struct {
	statementRepo statement.Repository
	optOutRepo    optout.Repository
	logger        logger.Interface
}

func NewGetStatementUseCase(
	statementRepo statement.Repository,
	optOutRepo optout.Repository,
	logger logger.Interface,
) *GetStatementUseCase {
	return &GetStatementUseCase{
		statementRepo: statementRepo,
		optOutRepo:    optOutRepo,
		logger:        logger,
	}
}

// Execute hides voided statements, statements of other tenants and
// statements of users who opted out of the caller.
func (uc *GetStatementUseCase) Execute(ctx context.Context, query GetStatementQuery) (*dto.StatementResponse, error) {
	id := format.CanonicalID(query.UUID)
	if id == "" {
		return nil, errors.NewValidationError("statement id is required")
	}

	stmt, err := uc.statementRepo.GetByUUID(ctx, id)
	if err != nil {
		uc.logger.Errorw("an error occurred when getting a learning activity statement", "uuid", id, "error", err)
		return nil, errors.NewStorageError("failed to get statement", err)
	}
	if stmt == nil || stmt.Voided() || stmt.TenantID() != query.TenantID {
		return nil, errors.NewNotFoundError(MsgStatementNotFound)
	}

	if stmt.UserID() != nil {
		optedOut, err := uc.optOutRepo.Exists(ctx, *stmt.UserID(), query.CredentialID)
		if err != nil {
			uc.logger.Errorw("failed to check opt-out", "uuid", id, "error", err)
			return nil, errors.NewStorageError("failed to get statement", err)
		}
		if optedOut {
			uc.logger.Infow("consumer attempted to read a statement of an opted-out user",
				"credential_id", query.CredentialID, "user_id", *stmt.UserID())
			return nil, errors.NewNotFoundError(MsgStatementNotFound)
		}
	}

	return dto.ToStatementResponse(stmt), nil
}
