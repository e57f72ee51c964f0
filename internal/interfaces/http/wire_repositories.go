package http

import (
	"gorm.io/gorm"

	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/domain/optout"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/domain/tenant"
	"github.com/lrsproject/lrs/internal/domain/user"
	"github.com/lrsproject/lrs/internal/infrastructure/repository"
	"github.com/lrsproject/lrs/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	tenantRepo     tenant.Repository
	credentialRepo credential.Repository
	userRepo       user.Repository
	statementRepo  statement.Repository
	optOutRepo     optout.Repository
	txMgr          *db.TransactionManager
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		tenantRepo:     repository.NewTenantRepository(gdb),
		credentialRepo: repository.NewCredentialRepository(gdb),
		userRepo:       repository.NewUserRepository(gdb),
		statementRepo:  repository.NewStatementRepository(gdb),
		optOutRepo:     repository.NewOptOutRepository(gdb),
		txMgr:          db.NewTransactionManager(gdb),
	}
}
