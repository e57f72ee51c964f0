package mappers

import (
	"gorm.io/datatypes"

	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
)

// StatementMapper handles the conversion between Statement domain entities and persistence models.
type StatementMapper interface {
	ToModel(s *statement.Statement) *models.StatementModel
	ToDomain(model *models.StatementModel) *statement.Statement
}

type StatementMapperImpl struct{}

func NewStatementMapper() StatementMapper {
	return &StatementMapperImpl{}
}

func (m *StatementMapperImpl) ToModel(s *statement.Statement) *models.StatementModel {
	return &models.StatementModel{
		UUID:             s.UUID(),
		Statement:        datatypes.JSON(s.Raw()),
		Verb:             s.Verb(),
		Timestamp:        s.Timestamp(),
		ActivityType:     s.ActivityType(),
		ActorType:        s.ActorType(),
		StatementType:    s.Type().String(),
		StatementVersion: s.Version(),
		Voided:           s.Voided(),
		TenantID:         s.TenantID(),
		UserID:           s.UserID(),
		CredentialID:     s.CredentialID(),
		CreatedAt:        s.CreatedAt(),
	}
}

// ToDomain carries the writer's name over when the credential was preloaded.
func (m *StatementMapperImpl) ToDomain(model *models.StatementModel) *statement.Statement {
	if model == nil {
		return nil
	}

	credentialName := ""
	if model.Credential != nil {
		credentialName = model.Credential.Name
	}

	return statement.ReconstructStatement(
		model.UUID,
		[]byte(model.Statement),
		model.Verb,
		model.Timestamp.UTC(),
		model.ActivityType,
		model.ActorType,
		statement.Type(model.StatementType),
		model.StatementVersion,
		model.Voided,
		model.TenantID,
		model.UserID,
		model.CredentialID,
		credentialName,
		model.CreatedAt,
	)
}
