package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

const caliperPersonEvent = `{
	"@context": "http://purl.imsglobal.org/ctx/caliper/v1p1",
	"id": "urn:uuid:3a648e68-f00d-4c08-aa59-8738e1884f2c",
	"uuid": "urn:uuid:3a648e68-f00d-4c08-aa59-8738e1884f2c",
	"type": "NavigationEvent",
	"action": "NavigatedTo",
	"eventTime": "2018-04-12T09:30:00.000Z",
	"actor": {
		"id": "https://example.edu/users/554433",
		"type": "Person",
		"name": "Jane Doe",
		"extensions": [{"user_login": "jdoe"}]
	},
	"object": {"id": "https://example.edu/courses/1", "type": "WebPage"}
}`

const xapiStatementJSON = `{
	"id": "fd41c918-b88b-4b20-a0a5-a4c32391aaa0",
	"timestamp": "2018-06-01T12:00:00Z",
	"actor": {
		"objectType": "Agent",
		"name": "Jane Doe",
		"account": {"homePage": "https://example.edu", "name": "jdoe"}
	},
	"verb": {"id": "http://adlnet.gov/expapi/verbs/Completed"},
	"object": {
		"id": "https://example.edu/quiz/1",
		"definition": {"type": "http://adlnet.gov/expapi/activities/Assessment"}
	}
}`

type fakeRefs struct {
	byUUID map[string]*statement.Statement
}

func (f *fakeRefs) GetByUUID(_ context.Context, id string) (*statement.Statement, error) {
	return f.byUUID[id], nil
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    statement.Type
		wantErr string
	}{
		{name: "caliper", payload: caliperPersonEvent, want: statement.TypeCaliper},
		{name: "xapi", payload: xapiStatementJSON, want: statement.TypeXAPI},
		{
			name:    "xapi with null id and timestamp",
			payload: `{"id": null, "timestamp": null, "actor": {}, "verb": {}, "object": {}}`,
			want:    statement.TypeXAPI,
		},
		{
			// A payload carrying both signatures is classified as Caliper
			// because that check runs first.
			name: "both signatures resolve to caliper",
			payload: `{"uuid": "u", "@context": "c", "eventTime": "t", "actor": {}, "object": {},
				"id": "i", "verb": {}, "timestamp": "t"}`,
			want: statement.TypeCaliper,
		},
		{name: "neither", payload: `{"actor": {}, "object": {}}`, wantErr: MsgUnknownFormat},
		{name: "caliper missing eventTime", payload: `{"uuid": "u", "@context": "c", "actor": {}, "object": {}}`, wantErr: MsgUnknownFormat},
		{name: "array", payload: `[]`, wantErr: MsgInvalidJSON},
		{name: "garbage", payload: `{not json`, wantErr: MsgInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Detect([]byte(tt.payload))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Equal(t, tt.wantErr, errors.GetAppError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, env.Type())
		})
	}
}

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fd41c918-b88b-4b20-a0a5-a4c32391aaa0", "fd41c918-b88b-4b20-a0a5-a4c32391aaa0"},
		{" FD41C918-B88B-4B20-A0A5-A4C32391AAA0 ", "fd41c918-b88b-4b20-a0a5-a4c32391aaa0"},
		{"fd41c918b88b4b20a0a5a4c32391aaa0", "fd41c918-b88b-4b20-a0a5-a4c32391aaa0"},
		{"{fd41c918-b88b-4b20-a0a5-a4c32391aaa0}", "fd41c918-b88b-4b20-a0a5-a4c32391aaa0"},
		{"urn:uuid:fd41c918-b88b-4b20-a0a5-a4c32391aaa0", "fd41c918-b88b-4b20-a0a5-a4c32391aaa0"},
		{"Not-A-UUID", "not-a-uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalID(tt.in))
		})
	}
}
