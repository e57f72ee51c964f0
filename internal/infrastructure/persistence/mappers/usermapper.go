package mappers

import (
	"github.com/lrsproject/lrs/internal/domain/user"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) *user.User
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:         u.ID(),
		TenantID:   u.TenantID(),
		ExternalID: u.ExternalID(),
		Name:       u.Name(),
		CreatedAt:  u.CreatedAt(),
		UpdatedAt:  u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(model.ID, model.TenantID, model.ExternalID, model.Name, model.CreatedAt, model.UpdatedAt)
}
