package statement

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicate is returned by Create when the uuid is already stored.
var ErrDuplicate = errors.New("statement uuid already exists")

// Owner scopes a read to one user of one tenant.
type Owner struct {
	TenantID uint
	UserID   uint
}

type MonthlyCount struct {
	Year  int
	Month time.Month
	Total int64
}

type ActivityCount struct {
	Activity string
	Total    int64
}

type SourceCount struct {
	Name  string
	Total int64
}

// Repository reads exclude voided statements.
type Repository interface {
	Exists(ctx context.Context, uuid string) (bool, error)
	// GetByUUID returns nil when the statement does not exist.
	GetByUUID(ctx context.Context, uuid string) (*Statement, error)
	Create(ctx context.Context, s *Statement) error
	ListRecent(ctx context.Context, owner Owner, limit, offset int) ([]*Statement, int64, error)
	// MonthlyTotals returns counts for months with activity, oldest first.
	MonthlyTotals(ctx context.Context, owner Owner) ([]MonthlyCount, error)
	TopActivities(ctx context.Context, owner Owner) ([]ActivityCount, error)
	DataSources(ctx context.Context, owner Owner) ([]SourceCount, error)
}
