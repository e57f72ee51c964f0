// Package optout records users' vetoes against individual credentials.
// A row means the user withdrew consent for that credential to read
// their data; no row is the default.
package optout

import "context"

type Repository interface {
	Exists(ctx context.Context, userID, credentialID uint) (bool, error)
	// Add is idempotent: adding an existing opt-out is a no-op.
	Add(ctx context.Context, userID, credentialID uint) error
	// Remove is idempotent: removing an absent opt-out is a no-op.
	Remove(ctx context.Context, userID, credentialID uint) error
}
