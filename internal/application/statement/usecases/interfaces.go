package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/statement/format"
	"github.com/lrsproject/lrs/internal/domain/user"
)

// TxManager runs fn in one database transaction. *db.TransactionManager
// satisfies it.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ActorResolver returns the user a statement is attributed to.
type ActorResolver interface {
	Resolve(ctx context.Context, tenantID uint, ref format.ActorRef) (*user.User, error)
}
