package usecases

import (
	"context"

	"github.com/samber/lo"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/domain/optout"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

const MsgDataUseNotFound = "Could not find a data use"

type UpdateDataShareCommand struct {
	Subject Subject
	Request dto.DataShareRequest
}

type UpdateDataShareUseCase struct {
	users          *UserLocator
	credentialRepo credential.Repository
	optOutRepo     optout.Repository
	logger         logger.Interface
}

func NewUpdateDataShareUseCase(
	users *UserLocator,
	credentialRepo credential.Repository,
	optOutRepo optout.Repository,
	logger logger.Interface,
) *UpdateDataShareUseCase {
	return &UpdateDataShareUseCase{
		users:          users,
		credentialRepo: credentialRepo,
		optOutRepo:     optOutRepo,
		logger:         logger,
	}
}

// Execute opts the user out of (share=false) or back into (share=true) one
// data use. Both directions are idempotent. A share value that is not a
// boolean is logged and ignored.
func (uc *UpdateDataShareUseCase) Execute(ctx context.Context, cmd UpdateDataShareCommand) error {
	if err := utils.ValidateStruct(cmd.Request); err != nil {
		return err
	}

	u, err := uc.users.Ensure(ctx, cmd.Subject)
	if err != nil {
		return err
	}

	uses, err := uc.credentialRepo.ListDataUses(ctx, u.TenantID(), u.ID())
	if err != nil {
		uc.logger.Errorw("failed to list data uses", "user_id", u.ID(), "error", err)
		return errors.NewStorageError("failed to update data share", err)
	}
	if !lo.ContainsBy(uses, func(use *credential.DataUse) bool { return use.ID == cmd.Request.ID }) {
		return errors.NewNotFoundError(MsgDataUseNotFound)
	}

	share, ok := cmd.Request.Share.(bool)
	if !ok {
		uc.logger.Warnw("the data use has a wrong share value, share has to be a boolean",
			"user_id", u.ID(), "credential_id", cmd.Request.ID, "share", cmd.Request.Share)
		return nil
	}

	if share {
		err = uc.optOutRepo.Remove(ctx, u.ID(), cmd.Request.ID)
	} else {
		err = uc.optOutRepo.Add(ctx, u.ID(), cmd.Request.ID)
	}
	if err != nil {
		uc.logger.Errorw("failed to update data share", "user_id", u.ID(), "credential_id", cmd.Request.ID, "error", err)
		return errors.NewStorageError("failed to update data share", err)
	}

	uc.logger.Infow("data share updated", "user_id", u.ID(), "credential_id", cmd.Request.ID, "share", share)
	return nil
}
