package credential

import "context"

// DataUse is a potential consumer of a user's data together with the
// user's current sharing decision for it.
type DataUse struct {
	ID          uint
	Name        string
	Description string
	Anonymous   bool
	Share       bool
}

type Repository interface {
	Create(ctx context.Context, c *Credential) error
	// GetByKey returns nil when no credential has the key.
	GetByKey(ctx context.Context, key string) (*Credential, error)
	// GetByID returns nil when the credential does not exist.
	GetByID(ctx context.Context, id uint) (*Credential, error)
	// List returns the credentials of a tenant, or every credential when
	// tenantID is nil.
	List(ctx context.Context, tenantID *uint) ([]*Credential, error)
	// ListDataUses returns the read-permitted datashare credentials of the
	// tenant plus every global credential, flagged with the user's opt-outs.
	ListDataUses(ctx context.Context, tenantID, userID uint) ([]*DataUse, error)
}
