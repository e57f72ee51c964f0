// Package actor links statements to the users they describe.
package actor

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/statement/format"
	"github.com/lrsproject/lrs/internal/domain/user"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

type Resolver struct {
	users  user.Repository
	logger logger.Interface
}

func NewResolver(users user.Repository, logger logger.Interface) *Resolver {
	return &Resolver{users: users, logger: logger}
}

// Resolve returns the tenant's user for ref, creating it on first sight.
// The stored name is replaced by ref's name when the user already exists
// and ref carries one; a nameless actor leaves the stored profile alone.
func (r *Resolver) Resolve(ctx context.Context, tenantID uint, ref format.ActorRef) (*user.User, error) {
	candidate, err := user.NewUser(tenantID, ref.ExternalID, ref.Name)
	if err != nil {
		r.logger.Warnw("statement actor is not a valid user", "external_id", ref.ExternalID, "error", err)
		return nil, errors.NewActorUnresolvableError(format.MsgActorUnresolvable, err.Error())
	}

	save := r.users.Upsert
	if ref.Name == "" {
		save = r.users.GetOrCreate
	}

	u, err := save(ctx, candidate)
	if err != nil {
		r.logger.Errorw("failed to upsert statement actor", "tenant_id", tenantID, "external_id", ref.ExternalID, "error", err)
		return nil, errors.NewStorageError("failed to resolve statement actor", err)
	}
	return u, nil
}
