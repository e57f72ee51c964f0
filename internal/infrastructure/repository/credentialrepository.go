package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/mappers"
	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
	"github.com/lrsproject/lrs/internal/shared/db"
)

type CredentialRepository struct {
	db     *gorm.DB
	mapper mappers.CredentialMapper
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db, mapper: mappers.NewCredentialMapper()}
}

func (r *CredentialRepository) Create(ctx context.Context, c *credential.Credential) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create credential: %w", err)
	}
	return c.SetID(model.ID)
}

// GetByKey uses a struct condition so the reserved column name is quoted
// by the dialect.
func (r *CredentialRepository) GetByKey(ctx context.Context, key string) (*credential.Credential, error) {
	var model models.CredentialModel
	err := db.GetTxFromContext(ctx, r.db).
		Where(&models.CredentialModel{Key: key}).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential by key: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *CredentialRepository) GetByID(ctx context.Context, id uint) (*credential.Credential, error) {
	var model models.CredentialModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *CredentialRepository) List(ctx context.Context, tenantID *uint) ([]*credential.Credential, error) {
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if tenantID != nil {
		query = query.Where("tenant_id = ?", *tenantID)
	}

	var list []*models.CredentialModel
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return r.mapper.ToDomainList(list), nil
}

type dataUseRow struct {
	ID          uint
	Name        string
	Description string
	Anonymous   bool
	OptOutID    *uint
}

func (r *CredentialRepository) ListDataUses(ctx context.Context, tenantID, userID uint) ([]*credential.DataUse, error) {
	var rows []dataUseRow
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CredentialModel{}).
		Select("credentials.id, credentials.name, credentials.description, credentials.anonymous, opt_outs.id AS opt_out_id").
		Joins("LEFT JOIN opt_outs ON opt_outs.credential_id = credentials.id AND opt_outs.user_id = ?", userID).
		Where("(credentials.tenant_id = ? AND credentials.datashare = ? AND credentials.read_permission = ?) OR credentials.tenant_id IS NULL",
			tenantID, true, true).
		Order("credentials.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list data uses: %w", err)
	}

	uses := make([]*credential.DataUse, 0, len(rows))
	for _, row := range rows {
		uses = append(uses, &credential.DataUse{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Anonymous:   row.Anonymous,
			Share:       row.OptOutID == nil,
		})
	}
	return uses, nil
}
