package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/domain/tenant"
	"github.com/lrsproject/lrs/internal/domain/user"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
	"github.com/lrsproject/lrs/internal/shared/id"
)

// setupTestDB opens a private in-memory database. A single connection keeps
// every query on the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, ":memory:", 1)
}

// setupPooledTestDB opens a temp-file database behind several connections so
// concurrent writers really reach sqlite at the same time. WAL plus a busy
// timeout lets them wait for the write lock instead of failing.
func setupPooledTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "lrs.db") + "?_busy_timeout=10000&_journal_mode=WAL&_foreign_keys=on"
	return openTestDB(t, dsn, 8)
}

func openTestDB(t *testing.T, dsn string, maxOpen int) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(maxOpen)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

type fixtures struct {
	t           *testing.T
	db          *gorm.DB
	tenants     *TenantRepository
	credentials *CredentialRepository
	users       *UserRepository
	statements  *StatementRepository
	optOuts     *OptOutRepository
}

func newFixtures(t *testing.T) *fixtures {
	return fixturesOn(t, setupTestDB(t))
}

func fixturesOn(t *testing.T, db *gorm.DB) *fixtures {
	return &fixtures{
		t:           t,
		db:          db,
		tenants:     NewTenantRepository(db),
		credentials: NewCredentialRepository(db),
		users:       NewUserRepository(db),
		statements:  NewStatementRepository(db),
		optOuts:     NewOptOutRepository(db),
	}
}

func (f *fixtures) tenant(name string) *tenant.Tenant {
	f.t.Helper()
	tn, err := tenant.NewTenant(name)
	require.NoError(f.t, err)
	require.NoError(f.t, f.tenants.Create(context.Background(), tn))
	return tn
}

func (f *fixtures) credential(name string, tenantID *uint, perms credential.Permissions) *credential.Credential {
	f.t.Helper()
	key, err := id.NewCredentialKey()
	require.NoError(f.t, err)
	c, err := credential.NewCredential(key, "$2a$04$hash", name, name+" description", tenantID, perms)
	require.NoError(f.t, err)
	require.NoError(f.t, f.credentials.Create(context.Background(), c))
	return c
}

func (f *fixtures) user(tenantID uint, externalID string) *user.User {
	f.t.Helper()
	u, err := user.NewUser(tenantID, externalID, "User "+externalID)
	require.NoError(f.t, err)
	stored, err := f.users.Upsert(context.Background(), u)
	require.NoError(f.t, err)
	return stored
}

func (f *fixtures) statement(u *user.User, credentialID uint, at time.Time, activity string) *statement.Statement {
	f.t.Helper()
	uuid := id.NewStatementID()
	userID := u.ID()
	s, err := statement.NewStatement(statement.Normalized{
		UUID:         uuid,
		Raw:          []byte(fmt.Sprintf(`{"id":%q}`, uuid)),
		Verb:         "http://adlnet.gov/expapi/verbs/" + activity,
		Timestamp:    at,
		ActivityType: activity,
		ActorType:    "Person",
		Type:         statement.TypeXAPI,
		Version:      "1.0.2",
	}, u.TenantID(), &userID, credentialID)
	require.NoError(f.t, err)
	require.NoError(f.t, f.statements.Create(context.Background(), s))
	return s
}

func (f *fixtures) void(uuid string) {
	f.t.Helper()
	require.NoError(f.t, f.db.Model(&models.StatementModel{}).Where("uuid = ?", uuid).Update("voided", true).Error)
}

func ptr[T any](v T) *T {
	return &v
}
