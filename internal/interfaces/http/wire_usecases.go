package http

import (
	authUsecases "github.com/lrsproject/lrs/internal/application/auth/usecases"
	"github.com/lrsproject/lrs/internal/application/statement/actor"
	statementUsecases "github.com/lrsproject/lrs/internal/application/statement/usecases"
	userUsecases "github.com/lrsproject/lrs/internal/application/user/usecases"
)

// useCases holds all application use cases reachable over HTTP.
type useCases struct {
	authenticateCredential *authUsecases.AuthenticateCredentialUseCase

	saveStatement *statementUsecases.SaveStatementUseCase
	getStatement  *statementUsecases.GetStatementUseCase

	getUserProfile       *userUsecases.GetUserProfileUseCase
	listRecentActivities *userUsecases.ListRecentActivitiesUseCase
	getTotalActivities   *userUsecases.GetTotalActivitiesUseCase
	getTopActivities     *userUsecases.GetTopActivitiesUseCase
	getDataSources       *userUsecases.GetDataSourcesUseCase
	getDataUses          *userUsecases.GetDataUsesUseCase
	updateDataShare      *userUsecases.UpdateDataShareUseCase
}

// ============================================================
// Section 2: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos

	resolver := actor.NewResolver(repos.userRepo, log.Named("actor"))
	users := userUsecases.NewUserLocator(repos.userRepo, repos.optOutRepo, log)

	c.ucs = &useCases{
		authenticateCredential: authUsecases.NewAuthenticateCredentialUseCase(repos.credentialRepo, c.svcs.hasher, log),

		saveStatement: statementUsecases.NewSaveStatementUseCase(repos.statementRepo, resolver, repos.txMgr, log),
		getStatement:  statementUsecases.NewGetStatementUseCase(repos.statementRepo, repos.optOutRepo, log),

		getUserProfile:       userUsecases.NewGetUserProfileUseCase(users),
		listRecentActivities: userUsecases.NewListRecentActivitiesUseCase(users, repos.statementRepo, log),
		getTotalActivities:   userUsecases.NewGetTotalActivitiesUseCase(users, repos.statementRepo, log),
		getTopActivities:     userUsecases.NewGetTopActivitiesUseCase(users, repos.statementRepo, log),
		getDataSources:       userUsecases.NewGetDataSourcesUseCase(users, repos.statementRepo, log),
		getDataUses:          userUsecases.NewGetDataUsesUseCase(users, repos.credentialRepo, log),
		updateDataShare:      userUsecases.NewUpdateDataShareUseCase(users, repos.credentialRepo, repos.optOutRepo, log),
	}
}
