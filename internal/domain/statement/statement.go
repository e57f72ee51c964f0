// Package statement holds the canonical learning activity record that both
// wire formats are normalized into.
package statement

import (
	"fmt"
	"time"
)

// Type identifies the wire format a statement arrived in.
type Type string

const (
	TypeXAPI    Type = "XAPI"
	TypeCaliper Type = "CALIPER"
)

func (t Type) IsValid() bool {
	return t == TypeXAPI || t == TypeCaliper
}

func (t Type) String() string {
	return string(t)
}

// Statement is append-only: once stored, its fields never change.
type Statement struct {
	uuid         string
	raw          []byte
	verb         string
	timestamp    time.Time
	activityType string
	actorType    string
	stmtType     Type
	version      string
	voided       bool
	tenantID     uint
	userID       *uint
	credentialID uint
	createdAt    time.Time

	// credentialName is populated on reads that join the writer.
	credentialName string
}

// Normalized carries the fields a format normalizer derives from a payload.
type Normalized struct {
	UUID         string
	Raw          []byte
	Verb         string
	Timestamp    time.Time
	ActivityType string
	ActorType    string
	Type         Type
	Version      string
}

// NewStatement binds a normalized payload to its tenant, user and writer.
func NewStatement(n Normalized, tenantID uint, userID *uint, credentialID uint) (*Statement, error) {
	if n.UUID == "" {
		return nil, fmt.Errorf("statement uuid is required")
	}
	if len(n.Raw) == 0 {
		return nil, fmt.Errorf("statement payload is required")
	}
	if !n.Type.IsValid() {
		return nil, fmt.Errorf("invalid statement type %q", n.Type)
	}
	if n.Timestamp.IsZero() {
		return nil, fmt.Errorf("statement timestamp is required")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if credentialID == 0 {
		return nil, fmt.Errorf("credential ID is required")
	}

	return &Statement{
		uuid:         n.UUID,
		raw:          n.Raw,
		verb:         n.Verb,
		timestamp:    n.Timestamp.UTC(),
		activityType: n.ActivityType,
		actorType:    n.ActorType,
		stmtType:     n.Type,
		version:      n.Version,
		tenantID:     tenantID,
		userID:       userID,
		credentialID: credentialID,
		createdAt:    time.Now().UTC(),
	}, nil
}

// ReconstructStatement rebuilds a statement from persistence.
func ReconstructStatement(
	uuid string,
	raw []byte,
	verb string,
	timestamp time.Time,
	activityType, actorType string,
	stmtType Type,
	version string,
	voided bool,
	tenantID uint,
	userID *uint,
	credentialID uint,
	credentialName string,
	createdAt time.Time,
) *Statement {
	return &Statement{
		uuid:           uuid,
		raw:            raw,
		verb:           verb,
		timestamp:      timestamp,
		activityType:   activityType,
		actorType:      actorType,
		stmtType:       stmtType,
		version:        version,
		voided:         voided,
		tenantID:       tenantID,
		userID:         userID,
		credentialID:   credentialID,
		credentialName: credentialName,
		createdAt:      createdAt,
	}
}

func (s *Statement) UUID() string           { return s.uuid }
func (s *Statement) Raw() []byte            { return s.raw }
func (s *Statement) Verb() string           { return s.verb }
func (s *Statement) Timestamp() time.Time   { return s.timestamp }
func (s *Statement) ActivityType() string   { return s.activityType }
func (s *Statement) ActorType() string      { return s.actorType }
func (s *Statement) Type() Type             { return s.stmtType }
func (s *Statement) Version() string        { return s.version }
func (s *Statement) Voided() bool           { return s.voided }
func (s *Statement) TenantID() uint         { return s.tenantID }
func (s *Statement) UserID() *uint          { return s.userID }
func (s *Statement) CredentialID() uint     { return s.credentialID }
func (s *Statement) CredentialName() string { return s.credentialName }
func (s *Statement) CreatedAt() time.Time   { return s.createdAt }
