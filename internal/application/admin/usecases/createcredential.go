package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/admin/dto"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/domain/tenant"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/id"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/services/sanitize"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

// maxKeyAttempts bounds retries when a generated key collides.
const maxKeyAttempts = 3

type SecretHasher interface {
	Hash(secret string) (string, error)
}

type CreateCredentialUseCase struct {
	credentials credential.Repository
	tenants     tenant.Repository
	hasher      SecretHasher
	sanitizer   sanitize.Sanitizer
	logger      logger.Interface
}

func NewCreateCredentialUseCase(
	credentials credential.Repository,
	tenants tenant.Repository,
	hasher SecretHasher,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *CreateCredentialUseCase {
	return &CreateCredentialUseCase{
		credentials: credentials,
		tenants:     tenants,
		hasher:      hasher,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

// Execute issues a new key/secret pair. The secret is returned once and
// only its hash is kept.
func (uc *CreateCredentialUseCase) Execute(ctx context.Context, req dto.CreateCredentialRequest) (*dto.IssuedCredentialResponse, error) {
	req.Name = uc.sanitizer.Text(req.Name)
	req.Description = uc.sanitizer.Text(req.Description)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if req.TenantID != nil {
		t, err := uc.tenants.GetByID(ctx, *req.TenantID)
		if err != nil {
			uc.logger.Errorw("failed to get tenant", "tenant_id", *req.TenantID, "error", err)
			return nil, errors.NewStorageError("Failed to get tenant", err)
		}
		if t == nil {
			return nil, errors.NewNotFoundError("Could not find a tenant")
		}
	}

	secret, err := id.NewCredentialSecret()
	if err != nil {
		return nil, errors.NewInternalError("Failed to generate credential secret", err.Error())
	}
	hash, err := uc.hasher.Hash(secret)
	if err != nil {
		return nil, errors.NewInternalError("Failed to hash credential secret", err.Error())
	}

	perms := credential.Permissions{
		Read:      req.Read,
		Write:     req.Write,
		Datashare: req.Datashare,
		Anonymous: req.Anonymous,
	}

	for attempt := 1; ; attempt++ {
		key, err := id.NewCredentialKey()
		if err != nil {
			return nil, errors.NewInternalError("Failed to generate credential key", err.Error())
		}

		c, err := credential.NewCredential(key, hash, req.Name, req.Description, req.TenantID, perms)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		err = uc.credentials.Create(ctx, c)
		if err == nil {
			uc.logger.Infow("credential created",
				"credential_id", c.ID(),
				"name", c.Name(),
				"global", c.IsGlobal())
			return &dto.IssuedCredentialResponse{
				CredentialResponse: *dto.ToCredentialResponse(c),
				Secret:             secret,
			}, nil
		}
		if !errors.IsDuplicateError(err) || attempt == maxKeyAttempts {
			uc.logger.Errorw("failed to create credential", "attempt", attempt, "error", err)
			return nil, errors.NewStorageError("Failed to create credential", err)
		}
		uc.logger.Warnw("credential key collision, retrying", "attempt", attempt)
	}
}
