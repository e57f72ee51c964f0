package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/domain/optout"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/domain/user"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

const MsgUserNotFound = "Could not find a user"

// Subject is the user a request is about, within the caller's effective
// tenant, and the credential making the request.
type Subject struct {
	TenantID     uint
	ExternalID   string
	CredentialID uint
}

func (s Subject) validate() error {
	if s.TenantID == 0 {
		return errors.NewValidationError("tenant is required")
	}
	if s.ExternalID == "" {
		return errors.NewValidationError("user external id is required")
	}
	return nil
}

// UserLocator finds the user a read is about. A user who opted out of the
// calling credential is reported as absent so that the caller cannot tell
// the two cases apart.
type UserLocator struct {
	userRepo   user.Repository
	optOutRepo optout.Repository
	logger     logger.Interface
}

func NewUserLocator(userRepo user.Repository, optOutRepo optout.Repository, logger logger.Interface) *UserLocator {
	return &UserLocator{userRepo: userRepo, optOutRepo: optOutRepo, logger: logger}
}

// Visible returns nil when the user does not exist or has opted out of the
// subject's credential.
func (l *UserLocator) Visible(ctx context.Context, subject Subject) (*user.User, error) {
	if err := subject.validate(); err != nil {
		return nil, err
	}

	u, err := l.userRepo.GetByExternalID(ctx, subject.TenantID, subject.ExternalID)
	if err != nil {
		l.logger.Errorw("an error occurred when getting a user", "external_id", subject.ExternalID, "error", err)
		return nil, errors.NewStorageError("failed to get user", err)
	}
	if u == nil {
		return nil, nil
	}

	optedOut, err := l.optOutRepo.Exists(ctx, u.ID(), subject.CredentialID)
	if err != nil {
		l.logger.Errorw("failed to check opt-out", "user_id", u.ID(), "credential_id", subject.CredentialID, "error", err)
		return nil, errors.NewStorageError("failed to get user", err)
	}
	if optedOut {
		l.logger.Infow("consumer attempted to check an opted-out user", "credential_id", subject.CredentialID, "user_id", u.ID())
		return nil, nil
	}
	return u, nil
}

// Ensure returns the user, creating an empty profile on first reference.
// Opt-outs are not consulted.
func (l *UserLocator) Ensure(ctx context.Context, subject Subject) (*user.User, error) {
	if err := subject.validate(); err != nil {
		return nil, err
	}

	candidate, err := user.NewUser(subject.TenantID, subject.ExternalID, "")
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	u, err := l.userRepo.GetOrCreate(ctx, candidate)
	if err != nil {
		l.logger.Errorw("failed to get or create a user", "external_id", subject.ExternalID, "error", err)
		return nil, errors.NewStorageError("failed to get user", err)
	}
	return u, nil
}

func ownerOf(u *user.User) statement.Owner {
	return statement.Owner{TenantID: u.TenantID(), UserID: u.ID()}
}
