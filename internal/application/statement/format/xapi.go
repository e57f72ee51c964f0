package format

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

const (
	XAPIVersion = "1.0.2"

	xapiPerson        = "Person"
	xapiStatementRef  = "StatementRef"
	xapiTimestampPath = "timestamp"
	xapiStoredPath    = "stored"
	xapiIDPath        = "id"
)

//go:embed xapi-statement.schema.json
var xapiSchemaJSON []byte

var (
	xapiSchemaOnce sync.Once
	xapiSchema     *jsonschema.Resolved
	xapiSchemaErr  error
)

func resolvedXAPISchema() (*jsonschema.Resolved, error) {
	xapiSchemaOnce.Do(func() {
		var schema jsonschema.Schema
		if err := json.Unmarshal(xapiSchemaJSON, &schema); err != nil {
			xapiSchemaErr = fmt.Errorf("failed to parse xAPI schema: %w", err)
			return
		}
		xapiSchema, xapiSchemaErr = schema.Resolve(nil)
	})
	return xapiSchema, xapiSchemaErr
}

type xapiStatement struct {
	raw    []byte
	fields map[string]gjson.Result
}

func (s *xapiStatement) sealed() {}

func (s *xapiStatement) Type() statement.Type {
	return statement.TypeXAPI
}

func (s *xapiStatement) Validate() error {
	schema, err := resolvedXAPISchema()
	if err != nil {
		return errors.NewInternalError("xAPI schema unavailable", err.Error())
	}

	var instance any
	if err := json.Unmarshal(s.raw, &instance); err != nil {
		return errors.NewValidationError(MsgInvalidJSON)
	}
	if err := schema.Validate(instance); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if ts := s.fields["timestamp"]; !absent(ts) {
		if _, err := time.Parse(time.RFC3339, ts.String()); err != nil {
			return errors.NewValidationError("timestamp must be an ISO 8601 date-time")
		}
	}
	return nil
}

// Actor identifies the agent by account name, then mailbox, then mailbox
// hash. Mailboxes are kept with their mailto: scheme.
func (s *xapiStatement) Actor() (ActorRef, error) {
	actor := s.fields["actor"]

	externalID := lo.CoalesceOrEmpty(
		actor.Get("account.name").String(),
		actor.Get("mbox").String(),
		actor.Get("mbox_sha1sum").String(),
	)
	if externalID == "" {
		return ActorRef{}, errors.NewActorUnresolvableError(MsgActorUnresolvable)
	}

	name := lo.CoalesceOrEmpty(actor.Get("name").String(), actor.Get("account.name").String())
	return ActorRef{ExternalID: externalID, Name: name}, nil
}

// Normalize fills in a missing id and timestamp, stamps the stored time and
// writes all three back into the raw payload.
func (s *xapiStatement) Normalize(ctx context.Context, refs RefLookup, now time.Time) (statement.Normalized, error) {
	now = now.UTC()
	raw := s.raw
	var err error

	id := s.fields["id"].String()
	if absent(s.fields["id"]) || id == "" {
		id = uuid.NewString()
		if raw, err = sjson.SetBytes(raw, xapiIDPath, id); err != nil {
			return statement.Normalized{}, errors.NewInternalError("failed to set statement id", err.Error())
		}
	}

	ts := now
	if v := s.fields["timestamp"]; !absent(v) && v.String() != "" {
		if ts, err = time.Parse(time.RFC3339, v.String()); err != nil {
			return statement.Normalized{}, errors.NewValidationError("timestamp must be an ISO 8601 date-time")
		}
	} else if raw, err = sjson.SetBytes(raw, xapiTimestampPath, now.Format(time.RFC3339Nano)); err != nil {
		return statement.Normalized{}, errors.NewInternalError("failed to set statement timestamp", err.Error())
	}

	if raw, err = sjson.SetBytes(raw, xapiStoredPath, now.Format(time.RFC3339Nano)); err != nil {
		return statement.Normalized{}, errors.NewInternalError("failed to set stored timestamp", err.Error())
	}

	objectType, err := s.objectType(ctx, refs)
	if err != nil {
		return statement.Normalized{}, err
	}

	verb := s.fields["verb"].Get("id").String()
	activityType := lastSegment(verb, "/")
	if objectType != "" {
		activityType += "_" + lastSegment(objectType, "/")
	}

	return statement.Normalized{
		UUID:         CanonicalID(id),
		Raw:          raw,
		Verb:         verb,
		Timestamp:    ts.UTC(),
		ActivityType: lower(activityType),
		ActorType:    xapiPerson,
		Type:         statement.TypeXAPI,
		Version:      XAPIVersion,
	}, nil
}

// objectType is the object's declared activity type. When the object only
// points at an earlier statement, the type of that statement's object is
// used instead.
func (s *xapiStatement) objectType(ctx context.Context, refs RefLookup) (string, error) {
	object := s.fields["object"]
	if t := object.Get("definition.type").String(); t != "" {
		return t, nil
	}
	if object.Get("objectType").String() != xapiStatementRef || refs == nil {
		return "", nil
	}

	refID := object.Get("id").String()
	if refID == "" {
		return "", nil
	}
	ref, err := refs.GetByUUID(ctx, CanonicalID(refID))
	if err != nil {
		return "", errors.NewStorageError("failed to load referenced statement", err)
	}
	if ref == nil {
		return "", nil
	}
	return gjson.GetBytes(ref.Raw(), "object.definition.type").String(), nil
}
