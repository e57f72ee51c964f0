package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/lrsproject/lrs/internal/application/statement/format"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

const MsgDuplicateStatement = "Attempted to save a learning activity statement that already exists"

type SaveStatementCommand struct {
	Payload      []byte
	CredentialID uint
	// TenantID is nil for cross-tenant credentials, which cannot write.
	TenantID *uint
}

type SaveStatementResult struct {
	UUID string
	Type statement.Type
}

type SaveStatementUseCase struct {
	statementRepo statement.Repository
	actors        ActorResolver
	txMgr         TxManager
	logger        logger.Interface
	now           func() time.Time
}

func NewSaveStatementUseCase(
	statementRepo statement.Repository,
	actors ActorResolver,
	txMgr TxManager,
	logger logger.Interface,
) *SaveStatementUseCase {
	return &SaveStatementUseCase{
		statementRepo: statementRepo,
		actors:        actors,
		txMgr:         txMgr,
		logger:        logger,
		now:           time.Now,
	}
}

func (uc *SaveStatementUseCase) Execute(ctx context.Context, cmd SaveStatementCommand) (*SaveStatementResult, error) {
	if cmd.TenantID == nil {
		uc.logger.Warnw("cross-tenant credential attempted to write a statement", "credential_id", cmd.CredentialID)
		return nil, errors.NewForbiddenError("Cross-tenant credentials cannot write statements")
	}
	tenantID := *cmd.TenantID

	env, err := format.Detect(cmd.Payload)
	if err != nil {
		uc.logger.Warnw(format.MsgUnknownFormat, "credential_id", cmd.CredentialID)
		return nil, err
	}
	log := uc.logger.With("format", env.Type().String(), "credential_id", cmd.CredentialID)

	if err := env.Validate(); err != nil {
		log.Warnw("invalid learning activity statement", "error", err)
		return nil, err
	}

	normalized, err := env.Normalize(ctx, tenantRefs{statements: uc.statementRepo, tenantID: tenantID}, uc.now())
	if err != nil {
		log.Warnw("failed to normalize learning activity statement", "error", err)
		return nil, err
	}
	log = log.With("uuid", normalized.UUID)

	exists, err := uc.statementRepo.Exists(ctx, normalized.UUID)
	if err != nil {
		log.Errorw("unable to verify if learning activity statement already exists", "error", err)
		return nil, errors.NewStorageError("failed to check statement", err)
	}
	if exists {
		log.Warnw(MsgDuplicateStatement)
		return nil, errors.NewDuplicateError(MsgDuplicateStatement)
	}

	ref, err := env.Actor()
	if err != nil {
		log.Errorw("unable to extract user from statement", "error", err)
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.actors.Resolve(txCtx, tenantID, ref)
		if err != nil {
			return err
		}

		userID := u.ID()
		stmt, err := statement.NewStatement(normalized, tenantID, &userID, cmd.CredentialID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.statementRepo.Create(txCtx, stmt); err != nil {
			// A concurrent write of the same uuid won the race.
			if stderrors.Is(err, statement.ErrDuplicate) {
				return errors.NewDuplicateError(MsgDuplicateStatement)
			}
			return errors.NewStorageError("failed to store statement", err)
		}
		return nil
	})
	if err != nil {
		log.Warnw("failed to store learning activity statement", "error", err)
		return nil, err
	}

	log.Infow("statement processing successful")
	return &SaveStatementResult{UUID: normalized.UUID, Type: env.Type()}, nil
}

// tenantRefs only dereferences statements of the writing tenant. A reference
// into another tenant behaves like a reference to a missing statement.
type tenantRefs struct {
	statements statement.Repository
	tenantID   uint
}

func (r tenantRefs) GetByUUID(ctx context.Context, id string) (*statement.Statement, error) {
	stmt, err := r.statements.GetByUUID(ctx, id)
	if err != nil || stmt == nil {
		return nil, err
	}
	if stmt.TenantID() != r.tenantID {
		return nil, nil
	}
	return stmt, nil
}
