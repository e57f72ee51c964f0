package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/mappers"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
	"github.com/lrsproject/lrs/internal/shared/db"
	sharedErrors "github.com/lrsproject/lrs/internal/shared/errors"
)

type StatementRepository struct {
	db     *gorm.DB
	mapper mappers.StatementMapper
}

func NewStatementRepository(db *gorm.DB) *StatementRepository {
	return &StatementRepository{db: db, mapper: mappers.NewStatementMapper()}
}

func (r *StatementRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StatementModel{}).
		Where("uuid = ?", uuid).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check statement: %w", err)
	}
	return count > 0, nil
}

func (r *StatementRepository) GetByUUID(ctx context.Context, uuid string) (*statement.Statement, error) {
	var model models.StatementModel
	err := db.GetTxFromContext(ctx, r.db).
		Preload("Credential", selectCredentialName).
		Where("uuid = ?", uuid).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// Create maps a primary key collision to statement.ErrDuplicate so that the
// loser of a concurrent duplicate write is reported like any other duplicate.
func (r *StatementRepository) Create(ctx context.Context, s *statement.Statement) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return statement.ErrDuplicate
		}
		return fmt.Errorf("failed to create statement: %w", err)
	}
	return nil
}

func (r *StatementRepository) ListRecent(ctx context.Context, owner statement.Owner, limit, offset int) ([]*statement.Statement, int64, error) {
	var total int64
	if err := r.owned(ctx, owner).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count statements: %w", err)
	}

	var list []*models.StatementModel
	err := r.owned(ctx, owner).
		Preload("Credential", selectCredentialName).
		Order("statements.timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list statements: %w", err)
	}

	result := make([]*statement.Statement, 0, len(list))
	for _, model := range list {
		result = append(result, r.mapper.ToDomain(model))
	}
	return result, total, nil
}

type monthlyRow struct {
	Year  int
	Month int
	Total int64
}

func (r *StatementRepository) MonthlyTotals(ctx context.Context, owner statement.Owner) ([]statement.MonthlyCount, error) {
	query := r.owned(ctx, owner)
	yearExpr, monthExpr := monthParts(query.Dialector.Name())

	var rows []monthlyRow
	err := query.
		Select(yearExpr + " AS year, " + monthExpr + " AS month, COUNT(*) AS total").
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate statements per month: %w", err)
	}

	counts := make([]statement.MonthlyCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, statement.MonthlyCount{
			Year:  row.Year,
			Month: time.Month(row.Month),
			Total: row.Total,
		})
	}
	return counts, nil
}

func (r *StatementRepository) TopActivities(ctx context.Context, owner statement.Owner) ([]statement.ActivityCount, error) {
	var rows []statement.ActivityCount
	err := r.owned(ctx, owner).
		Select("statements.activity_type AS activity, COUNT(*) AS total").
		Group("statements.activity_type").
		Order("total DESC, activity ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top activities: %w", err)
	}
	return rows, nil
}

func (r *StatementRepository) DataSources(ctx context.Context, owner statement.Owner) ([]statement.SourceCount, error) {
	var rows []statement.SourceCount
	err := r.owned(ctx, owner).
		Joins("JOIN credentials ON credentials.id = statements.credential_id").
		Select("credentials.name AS name, COUNT(*) AS total").
		Group("credentials.id, credentials.name").
		Order("total DESC, credentials.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate data sources: %w", err)
	}
	return rows, nil
}

func (r *StatementRepository) owned(ctx context.Context, owner statement.Owner) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Model(&models.StatementModel{}).
		Scopes(db.OwnedBy(owner.TenantID, owner.UserID), db.NotVoided())
}

func selectCredentialName(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "name")
}

// monthParts returns the SQL expressions extracting the calendar year and
// month of statements.timestamp for the given gorm dialect.
func monthParts(dialect string) (string, string) {
	switch dialect {
	case "sqlite":
		return "CAST(strftime('%Y', statements.timestamp) AS INTEGER)",
			"CAST(strftime('%m', statements.timestamp) AS INTEGER)"
	case "mysql":
		return "YEAR(statements.timestamp)", "MONTH(statements.timestamp)"
	default:
		return "CAST(EXTRACT(YEAR FROM statements.timestamp) AS INTEGER)",
			"CAST(EXTRACT(MONTH FROM statements.timestamp) AS INTEGER)"
	}
}
