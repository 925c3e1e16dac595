// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the domain.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

// FindByKey retrieves a setting row by its unique key.
func (repo *settingRepository) FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	var settingM model.SystemSettingModel
	if err := repo.db.WithContext(ctx).First(&settingM, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting by key")
	}

	return toSettingDomain(&settingM), nil
}

// Upsert writes the value under the key, inserting the row on first write
// and replacing the stored value afterwards.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.SystemSetting) error {
	settingM := fromSettingDomain(setting)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      gorm.Expr("EXCLUDED.value"),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	return nil
}

// --- Mapper Functions ---

// toSettingDomain converts a GORM SystemSettingModel to a domain SystemSetting entity.
func toSettingDomain(data *model.SystemSettingModel) *entity.SystemSetting {
	if data == nil {
		return nil
	}

	return &entity.SystemSetting{
		ID:        data.ID,
		Key:       data.Key,
		Value:     fromJSONColumn(data.Value),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSettingDomain converts a domain SystemSetting entity to a GORM SystemSettingModel.
func fromSettingDomain(data *entity.SystemSetting) *model.SystemSettingModel {
	if data == nil {
		return nil
	}

	return &model.SystemSettingModel{
		ID:    data.ID,
		Key:   data.Key,
		Value: toJSONColumn(data.Value),
	}
}
