package format

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

const (
	DefaultCaliperVersion = "v1p1"

	caliperPerson   = "Person"
	caliperSoftware = "SoftwareApplication"
)

type caliperEvent struct {
	raw    []byte
	fields map[string]gjson.Result
}

func (e *caliperEvent) sealed() {}

func (e *caliperEvent) Type() statement.Type {
	return statement.TypeCaliper
}

// Validate checks every required part independently so the caller sees all
// problems at once.
func (e *caliperEvent) Validate() error {
	var result *multierror.Error

	if !nonEmptyString(e.fields["@context"]) {
		result = multierror.Append(result, fmt.Errorf("@context must be a Caliper context URI"))
	}
	if !nonEmptyString(e.fields["type"]) {
		result = multierror.Append(result, fmt.Errorf("type is required"))
	}
	if _, err := e.statementID(); err != nil {
		result = multierror.Append(result, err)
	}

	actor := e.fields["actor"]
	switch {
	case !actor.IsObject():
		result = multierror.Append(result, fmt.Errorf("actor must be an object"))
	case !nonEmptyString(actor.Get("type")):
		result = multierror.Append(result, fmt.Errorf("actor.type is required"))
	}

	if !nonEmptyString(e.fields["action"]) {
		result = multierror.Append(result, fmt.Errorf("action is required"))
	}
	if !e.fields["object"].IsObject() {
		result = multierror.Append(result, fmt.Errorf("object must be an object"))
	}
	if _, err := e.eventTime(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.NewValidationError(joinReasons(result))
	}
	return nil
}

func (e *caliperEvent) Actor() (ActorRef, error) {
	actor := e.fields["actor"]

	switch caliperKind(actor) {
	case caliperPerson:
		return caliperPersonRef(actor)
	case caliperSoftware:
		// A software actor acts on behalf of the person it carries inside
		// the event object.
		nested := e.fields["object"].Get("actor")
		if caliperKind(nested) == caliperPerson {
			return caliperPersonRef(nested)
		}
	}
	return ActorRef{}, errors.NewActorUnresolvableError(MsgActorUnresolvable)
}

func (e *caliperEvent) Normalize(_ context.Context, _ RefLookup, _ time.Time) (statement.Normalized, error) {
	id, err := e.statementID()
	if err != nil {
		return statement.Normalized{}, errors.NewValidationError(err.Error())
	}
	ts, err := e.eventTime()
	if err != nil {
		return statement.Normalized{}, errors.NewValidationError(err.Error())
	}

	version := lastSegment(e.fields["@context"].String(), "/")
	if version == "" {
		version = DefaultCaliperVersion
	}

	return statement.Normalized{
		UUID:         id,
		Raw:          e.raw,
		Verb:         e.fields["type"].String(),
		Timestamp:    ts,
		ActivityType: lower(e.fields["action"].String()),
		ActorType:    e.fields["actor"].Get("type").String(),
		Type:         statement.TypeCaliper,
		Version:      version,
	}, nil
}

// statementID takes the trailing segment of the "urn:uuid:<uuid>" id. The
// "id" member is preferred, "uuid" is the fallback.
func (e *caliperEvent) statementID() (string, error) {
	urn := lo.CoalesceOrEmpty(e.fields["id"].String(), e.fields["uuid"].String())
	if urn == "" {
		return "", fmt.Errorf("UUID URN is missing")
	}
	parsed, err := uuid.Parse(lastSegment(urn, ":"))
	if err != nil {
		return "", fmt.Errorf("id %q does not end in a UUID", urn)
	}
	return parsed.String(), nil
}

func (e *caliperEvent) eventTime() (time.Time, error) {
	raw := e.fields["eventTime"]
	if !nonEmptyString(raw) {
		return time.Time{}, fmt.Errorf("eventTime is required")
	}
	ts, err := time.Parse(time.RFC3339, raw.Str)
	if err != nil {
		return time.Time{}, fmt.Errorf("eventTime must be an ISO 8601 date-time")
	}
	return ts.UTC(), nil
}

// caliperKind accepts both "Person" and the full type IRI used by Caliper 1.0.
func caliperKind(r gjson.Result) string {
	return lastSegment(r.Get("type").String(), "/")
}

// caliperPersonRef reads the login from the first extension entry. The
// extensions member may be a list or a single object.
func caliperPersonRef(person gjson.Result) (ActorRef, error) {
	login := lo.CoalesceOrEmpty(
		person.Get("extensions.0.user_login").String(),
		person.Get("extensions.user_login").String(),
	)
	if login == "" {
		return ActorRef{}, errors.NewActorUnresolvableError(MsgActorUnresolvable)
	}
	return ActorRef{ExternalID: login, Name: person.Get("name").String()}, nil
}

func joinReasons(errs *multierror.Error) string {
	return strings.Join(lo.Map(errs.Errors, func(err error, _ int) string {
		return err.Error()
	}), "; ")
}
