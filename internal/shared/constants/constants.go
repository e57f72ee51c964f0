// Package constants holds table names, context keys and paging bounds.
package constants

const (
	TableTenants     = "tenants"
	TableCredentials = "credentials"
	TableUsers       = "users"
	TableStatements  = "statements"
	TableOptOuts     = "opt_outs"
)

// Recent activity paging.
const (
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 25
)

// Gin context keys.
const (
	ContextKeyAuth       = "auth_context"
	ContextKeyExternalID = "external_id"

	// ContextKeySessionTenant is the tenant claim of a verified session.
	ContextKeySessionTenant = "session_tenant"
)

// CurrentUserSegment is the path segment that selects the session user
// instead of an explicit external id.
const CurrentUserSegment = "me"

// Server modes, matching gin's.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)
