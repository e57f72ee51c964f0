// Package models contains the gorm persistence models. They are the
// anti-corruption layer between the domain and the database.
package models

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&TenantModel{},
		&CredentialModel{},
		&UserModel{},
		&StatementModel{},
		&OptOutModel{},
	}
}
