package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lrsproject/lrs/internal/application/testutil"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/domain/statement"
)

type fixture struct {
	users       *testutil.MockUserRepository
	statements  *testutil.MockStatementRepository
	optOuts     *testutil.MockOptOutRepository
	credentials *testutil.MockCredentialRepository
	logger      *testutil.MockLogger
	locator     *UserLocator
}

func newFixture() *fixture {
	f := &fixture{
		users:      testutil.NewMockUserRepository(),
		statements: testutil.NewMockStatementRepository(),
		optOuts:    testutil.NewMockOptOutRepository(),
		logger:     testutil.NewMockLogger(),
	}
	f.credentials = testutil.NewMockCredentialRepository(f.optOuts)
	f.locator = NewUserLocator(f.users, f.optOuts, f.logger)
	return f
}

func (f *fixture) credential(t *testing.T, name string, tenantID *uint, perms credential.Permissions) *credential.Credential {
	t.Helper()
	c, err := credential.NewCredential("key-"+name, "hash", name, name+" description", tenantID, perms)
	require.NoError(t, err)
	require.NoError(t, f.credentials.Create(context.Background(), c))
	f.statements.NameCredential(c.ID(), name)
	return c
}

func (f *fixture) statement(t *testing.T, tenantID, userID, credentialID uint, activity string, ts time.Time) *statement.Statement {
	t.Helper()
	s, err := statement.NewStatement(statement.Normalized{
		UUID:         uuid.NewString(),
		Raw:          []byte(`{}`),
		Verb:         "http://adlnet.gov/expapi/verbs/" + activity,
		Timestamp:    ts,
		ActivityType: activity,
		ActorType:    "Person",
		Type:         statement.TypeXAPI,
		Version:      "1.0.2",
	}, tenantID, &userID, credentialID)
	require.NoError(t, err)
	f.statements.Add(s)
	return s
}

func ptr[T any](v T) *T { return &v }

func month(year int, m time.Month, day int) time.Time {
	return time.Date(year, m, day, 12, 0, 0, 0, time.UTC)
}
