package dto

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"

	"github.com/lrsproject/lrs/internal/domain/statement"
)

// CredentialRef names the credential that wrote a statement.
type CredentialRef struct {
	Name string `json:"name"`
}

type StatementResponse struct {
	UUID             string          `json:"uuid"`
	Statement        json.RawMessage `json:"statement"`
	Verb             string          `json:"verb"`
	Timestamp        time.Time       `json:"timestamp"`
	ActivityType     string          `json:"activity_type"`
	ActorType        string          `json:"actor_type"`
	StatementType    string          `json:"statement_type"`
	StatementVersion string          `json:"statement_version"`
	Voided           bool            `json:"voided"`
	TenantID         uint            `json:"tenant_id"`
	UserID           *uint           `json:"user_id"`
	CredentialID     uint            `json:"credential_id"`
	Credential       *CredentialRef  `json:"credential,omitempty"`
}

func ToStatementResponse(s *statement.Statement) *StatementResponse {
	if s == nil {
		return nil
	}

	resp := &StatementResponse{
		UUID:             s.UUID(),
		Statement:        json.RawMessage(s.Raw()),
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
	}
	if s.CredentialName() != "" {
		resp.Credential = &CredentialRef{Name: s.CredentialName()}
	}
	return resp
}

func ToStatementResponseList(statements []*statement.Statement) []*StatementResponse {
	return lo.Map(statements, func(s *statement.Statement, _ int) *StatementResponse {
		return ToStatementResponse(s)
	})
}
