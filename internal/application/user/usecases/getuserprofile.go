package usecases

import (
	"context"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

type GetUserProfileUseCase struct {
	users *UserLocator
}

func NewGetUserProfileUseCase(users *UserLocator) *GetUserProfileUseCase {
	return &GetUserProfileUseCase{users: users}
}

func (uc *GetUserProfileUseCase) Execute(ctx context.Context, subject Subject) (*dto.UserResponse, error) {
	u, err := uc.users.Visible(ctx, subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError(MsgUserNotFound)
	}
	return dto.ToUserResponse(u), nil
}
