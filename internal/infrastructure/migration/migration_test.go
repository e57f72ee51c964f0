package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lrsproject/lrs/internal/shared/constants"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func assertSchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, table := range []string{
		constants.TableTenants,
		constants.TableCredentials,
		constants.TableUsers,
		constants.TableStatements,
		constants.TableOptOuts,
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(constants.TableUsers, "idx_users_tenant_external"))
	assert.True(t, db.Migrator().HasIndex(constants.TableOptOuts, "idx_opt_outs_user_credential"))
}

func TestManagerStrategies(t *testing.T) {
	dev, err := NewManager(constants.ModeDebug, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, "gorm_automigrate", dev.GetStrategy().GetName())

	prod, err := NewManager(constants.ModeRelease, "postgres")
	require.NoError(t, err)
	assert.Equal(t, "goose", prod.GetStrategy().GetName())

	_, err = NewManager(constants.ModeRelease, "oracle")
	assert.Error(t, err)
}

func TestAutoMigrate(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, NewManagerWithStrategy(NewGormAutoMigrateStrategy()).Migrate(db))
	assertSchema(t, db)
}

func TestGooseMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	strategy, err := NewGooseStrategy("sqlite")
	require.NoError(t, err)
	m := NewManagerWithStrategy(strategy)

	require.NoError(t, m.Migrate(db))
	require.NoError(t, m.Migrate(db))
	assertSchema(t, db)

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestScriptsExistForEveryDialect(t *testing.T) {
	for _, dialect := range []string{"sqlite3", "mysql", "postgres"} {
		entries, err := scriptsFS.ReadDir("scripts/" + dialect)
		require.NoError(t, err, dialect)
		assert.NotEmpty(t, entries, dialect)
	}
}
