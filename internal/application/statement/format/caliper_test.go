package format

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"

	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

func detectCaliper(t *testing.T, payload string) Envelope {
	t.Helper()
	env, err := Detect([]byte(payload))
	require.NoError(t, err)
	require.Equal(t, statement.TypeCaliper, env.Type())
	return env
}

func TestCaliperNormalize(t *testing.T) {
	env := detectCaliper(t, caliperPersonEvent)
	require.NoError(t, env.Validate())

	n, err := env.Normalize(context.Background(), nil, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "3a648e68-f00d-4c08-aa59-8738e1884f2c", n.UUID)
	assert.Equal(t, "NavigationEvent", n.Verb)
	assert.Equal(t, "navigatedto", n.ActivityType)
	assert.Equal(t, "Person", n.ActorType)
	assert.Equal(t, "v1p1", n.Version)
	assert.Equal(t, statement.TypeCaliper, n.Type)
	assert.Equal(t, time.Date(2018, 4, 12, 9, 30, 0, 0, time.UTC), n.Timestamp)
	assert.JSONEq(t, caliperPersonEvent, string(n.Raw))
}

func TestCaliperIDSpellingsShareOneKey(t *testing.T) {
	spellings := []string{
		"urn:uuid:3a648e68-f00d-4c08-aa59-8738e1884f2c",
		"urn:uuid:3A648E68-F00D-4C08-AA59-8738E1884F2C",
		"urn:uuid:3a648e68f00d4c08aa598738e1884f2c",
		"urn:uuid:{3a648e68-f00d-4c08-aa59-8738e1884f2c}",
	}

	for _, id := range spellings {
		t.Run(id, func(t *testing.T) {
			payload, err := sjson.Set(caliperPersonEvent, "id", id)
			require.NoError(t, err)

			env := detectCaliper(t, payload)
			require.NoError(t, env.Validate())
			n, err := env.Normalize(context.Background(), nil, time.Now())
			require.NoError(t, err)
			assert.Equal(t, "3a648e68-f00d-4c08-aa59-8738e1884f2c", n.UUID)
		})
	}
}

func TestCaliperVersionDefault(t *testing.T) {
	payload, err := sjson.Set(caliperPersonEvent, "@context", "ctx/")
	require.NoError(t, err)

	n, err := detectCaliper(t, payload).Normalize(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, DefaultCaliperVersion, n.Version)
}

func TestCaliperValidateAccumulatesErrors(t *testing.T) {
	payload := `{
		"@context": "",
		"uuid": "urn:uuid:not-a-uuid",
		"eventTime": "yesterday",
		"actor": "jdoe",
		"object": []
	}`

	err := detectCaliper(t, payload).Validate()
	require.Error(t, err)
	require.True(t, errors.IsValidationError(err))

	reasons := strings.Split(errors.GetAppError(err).Message, "; ")
	assert.Len(t, reasons, 7)
	assert.Contains(t, reasons, "@context must be a Caliper context URI")
	assert.Contains(t, reasons, "type is required")
	assert.Contains(t, reasons, "actor must be an object")
	assert.Contains(t, reasons, "action is required")
	assert.Contains(t, reasons, "object must be an object")
	assert.Contains(t, reasons, "eventTime must be an ISO 8601 date-time")
	assert.Contains(t, reasons, `id "urn:uuid:not-a-uuid" does not end in a UUID`)
}

func TestCaliperActor(t *testing.T) {
	software := func(object string) string {
		payload, err := sjson.SetRaw(caliperPersonEvent, "actor",
			`{"id": "https://example.edu/lti", "type": "SoftwareApplication"}`)
		require.NoError(t, err)
		payload, err = sjson.SetRaw(payload, "object", object)
		require.NoError(t, err)
		return payload
	}

	tests := []struct {
		name    string
		payload string
		want    ActorRef
		wantErr bool
	}{
		{
			name:    "person with extension list",
			payload: caliperPersonEvent,
			want:    ActorRef{ExternalID: "jdoe", Name: "Jane Doe"},
		},
		{
			name: "person with extension object and type IRI",
			payload: mustSetRaw(t, caliperPersonEvent, "actor",
				`{"type": "http://purl.imsglobal.org/caliper/v1p1/Person", "extensions": {"user_login": "asmith"}}`),
			want: ActorRef{ExternalID: "asmith"},
		},
		{
			name: "software application descends into object",
			payload: software(`{"type": "Attempt", "actor": {"type": "Person", "name": "Nested",
				"extensions": [{"user_login": "nested"}]}}`),
			want: ActorRef{ExternalID: "nested", Name: "Nested"},
		},
		{
			name:    "software application without nested person",
			payload: software(`{"type": "Attempt"}`),
			wantErr: true,
		},
		{
			name:    "software application with nested software",
			payload: software(`{"actor": {"type": "SoftwareApplication"}}`),
			wantErr: true,
		},
		{
			name:    "person without login",
			payload: mustSetRaw(t, caliperPersonEvent, "actor", `{"type": "Person", "name": "No Login"}`),
			wantErr: true,
		},
		{
			name:    "organization",
			payload: mustSetRaw(t, caliperPersonEvent, "actor", `{"type": "Organization"}`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := detectCaliper(t, tt.payload).Actor()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrorTypeActorUnresolvable, errors.GetAppError(err).Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func mustSetRaw(t *testing.T, json, path, raw string) string {
	t.Helper()
	out, err := sjson.SetRaw(json, path, raw)
	require.NoError(t, err)
	return out
}
