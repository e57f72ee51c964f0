package mappers

import (
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
)

// CredentialMapper handles the conversion between Credential domain entities and persistence models.
type CredentialMapper interface {
	ToModel(c *credential.Credential) *models.CredentialModel
	ToDomain(model *models.CredentialModel) *credential.Credential
	ToDomainList(models []*models.CredentialModel) []*credential.Credential
}

type CredentialMapperImpl struct{}

func NewCredentialMapper() CredentialMapper {
	return &CredentialMapperImpl{}
}

func (m *CredentialMapperImpl) ToModel(c *credential.Credential) *models.CredentialModel {
	perms := c.Permissions()
	return &models.CredentialModel{
		ID:              c.ID(),
		Key:             c.Key(),
		SecretHash:      c.SecretHash(),
		Name:            c.Name(),
		Description:     c.Description(),
		ReadPermission:  perms.Read,
		WritePermission: perms.Write,
		Datashare:       perms.Datashare,
		Anonymous:       perms.Anonymous,
		TenantID:        c.TenantID(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func (m *CredentialMapperImpl) ToDomain(model *models.CredentialModel) *credential.Credential {
	if model == nil {
		return nil
	}
	return credential.ReconstructCredential(
		model.ID,
		model.Key,
		model.SecretHash,
		model.Name,
		model.Description,
		model.TenantID,
		credential.Permissions{
			Read:      model.ReadPermission,
			Write:     model.WritePermission,
			Datashare: model.Datashare,
			Anonymous: model.Anonymous,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CredentialMapperImpl) ToDomainList(list []*models.CredentialModel) []*credential.Credential {
	result := make([]*credential.Credential, 0, len(list))
	for _, model := range list {
		result = append(result, m.ToDomain(model))
	}
	return result
}
