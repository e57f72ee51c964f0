// Package format detects which wire format a statement payload uses and
// turns it into the canonical statement fields. Each format is one variant
// of the sealed Envelope union and owns its validation and derivation.
package format

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

const (
	MsgUnknownFormat     = "Statement not in xAPI or Caliper format"
	MsgInvalidJSON       = "Statement is not a valid JSON object"
	MsgActorUnresolvable = "Could not resolve the statement actor to a user"
)

// Top-level keys whose joint presence identifies a format. Caliper is
// checked first, so a payload carrying both signatures is Caliper.
var (
	caliperSignature = []string{"uuid", "@context", "eventTime", "actor", "object"}
	xapiSignature    = []string{"id", "actor", "verb", "object", "timestamp"}
)

// ActorRef is the user a statement is attributed to.
type ActorRef struct {
	ExternalID string
	Name       string
}

// RefLookup resolves previously stored statements.
type RefLookup interface {
	GetByUUID(ctx context.Context, uuid string) (*statement.Statement, error)
}

// Envelope is a payload of one supported format.
type Envelope interface {
	Type() statement.Type
	// Validate reports every structural problem of the payload as a
	// validation error.
	Validate() error
	// Actor extracts the human actor of the statement.
	Actor() (ActorRef, error)
	// Normalize derives the canonical fields. now is used for generated
	// timestamps.
	Normalize(ctx context.Context, refs RefLookup, now time.Time) (statement.Normalized, error)

	sealed()
}

// Detect classifies raw by its top-level keys.
func Detect(raw []byte) (Envelope, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.NewValidationError(MsgInvalidJSON)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, errors.NewValidationError(MsgInvalidJSON)
	}

	fields := doc.Map()
	keys := lo.Keys(fields)

	switch {
	case lo.Every(keys, caliperSignature):
		return &caliperEvent{raw: raw, fields: fields}, nil
	case lo.Every(keys, xapiSignature):
		return &xapiStatement{raw: raw, fields: fields}, nil
	default:
		return nil, errors.NewValidationError(MsgUnknownFormat)
	}
}

// lastSegment returns the part of s after the final sep, or s itself.
func lastSegment(s, sep string) string {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return s
}

// CanonicalID is the stored form of a statement id. UUIDs in any spelling
// uuid.Parse accepts map to the lower-case hyphenated form; other ids are
// trimmed and lower-cased.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return lower(id)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func nonEmptyString(r gjson.Result) bool {
	return r.Type == gjson.String && strings.TrimSpace(r.Str) != ""
}

// absent reports whether a key is missing or explicitly null.
func absent(r gjson.Result) bool {
	return !r.Exists() || r.Type == gjson.Null
}
