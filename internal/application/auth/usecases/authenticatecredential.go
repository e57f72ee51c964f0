package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/auth/dto"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

const MsgIncorrectCredentials = "Incorrect credentials"

// SecretVerifier checks a clear-text secret against its stored hash.
type SecretVerifier interface {
	Verify(secret, hash string) error
}

type AuthenticateCredentialCommand struct {
	Key    string
	Secret string
}

type AuthenticateCredentialUseCase struct {
	credentials credential.Repository
	verifier    SecretVerifier
	logger      logger.Interface
}

func NewAuthenticateCredentialUseCase(
	credentials credential.Repository,
	verifier SecretVerifier,
	logger logger.Interface,
) *AuthenticateCredentialUseCase {
	return &AuthenticateCredentialUseCase{
		credentials: credentials,
		verifier:    verifier,
		logger:      logger,
	}
}

// Execute resolves a key/secret pair to the caller's AuthContext. An
// unknown key and a wrong secret produce the same error.
func (uc *AuthenticateCredentialUseCase) Execute(ctx context.Context, cmd AuthenticateCredentialCommand) (*dto.AuthContext, error) {
	if cmd.Key == "" || cmd.Secret == "" {
		return nil, errors.NewUnauthorizedError(MsgIncorrectCredentials)
	}

	c, err := uc.credentials.GetByKey(ctx, cmd.Key)
	if err != nil {
		uc.logger.Errorw("failed to look up credential", "error", err)
		return nil, errors.NewStorageError("Failed to verify credentials", err)
	}
	if c == nil {
		uc.logger.Infow("rejected unknown credential key")
		return nil, errors.NewUnauthorizedError(MsgIncorrectCredentials)
	}

	if err := uc.verifier.Verify(cmd.Secret, c.SecretHash()); err != nil {
		uc.logger.Infow("rejected credential secret", "credential_id", c.ID())
		return nil, errors.NewUnauthorizedError(MsgIncorrectCredentials)
	}

	return dto.NewAuthContext(c), nil
}
