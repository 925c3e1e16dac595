// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// frameOptionRepository implements the domain.FrameOptionRepository interface.
type frameOptionRepository struct {
	db *gorm.DB
}

// NewFrameOptionRepository is the constructor for frameOptionRepository.
func NewFrameOptionRepository(db *gorm.DB) repository.FrameOptionRepository {
	return &frameOptionRepository{db: db}
}

// Create persists a new frame option.
func (repo *frameOptionRepository) Create(ctx context.Context, option *entity.FrameOption) error {
	optionM := fromFrameOptionDomain(option)

	if err := repo.db.WithContext(ctx).Create(optionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required frame option information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create frame option")
	}

	option.ID = optionM.ID
	option.CreatedAt = optionM.CreatedAt
	option.UpdatedAt = optionM.UpdatedAt

	return nil
}

// FindByID retrieves a frame option by its unique ID, active or not.
func (repo *frameOptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FrameOption, error) {
	var optionM model.FrameOptionModel
	if err := repo.db.WithContext(ctx).First(&optionM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFrameOptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find frame option by ID")
	}

	return toFrameOptionDomain(&optionM), nil
}

// FindActive retrieves all active frame options, oldest first.
func (repo *frameOptionRepository) FindActive(ctx context.Context) ([]*entity.FrameOption, error) {
	var optionModels []*model.FrameOptionModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&optionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active frame options")
	}

	options := make([]*entity.FrameOption, 0, len(optionModels))
	for _, optionM := range optionModels {
		options = append(options, toFrameOptionDomain(optionM))
	}

	return options, nil
}

// FindAll retrieves every frame option including inactive ones.
func (repo *frameOptionRepository) FindAll(ctx context.Context) ([]*entity.FrameOption, error) {
	var optionModels []*model.FrameOptionModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&optionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find frame options")
	}

	options := make([]*entity.FrameOption, 0, len(optionModels))
	for _, optionM := range optionModels {
		options = append(options, toFrameOptionDomain(optionM))
	}

	return options, nil
}

// Update updates an existing frame option record.
func (repo *frameOptionRepository) Update(ctx context.Context, option *entity.FrameOption) error {
	optionM := fromFrameOptionDomain(option)

	if err := repo.db.WithContext(ctx).Save(optionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update frame option")
	}

	option.UpdatedAt = optionM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toFrameOptionDomain converts a GORM FrameOptionModel to a domain FrameOption entity.
func toFrameOptionDomain(data *model.FrameOptionModel) *entity.FrameOption {
	if data == nil {
		return nil
	}

	return &entity.FrameOption{
		ID:          data.ID,
		Style:       data.Style,
		Material:    data.Material,
		Color:       data.Color,
		WidthCm:     data.WidthCm,
		HeightCm:    data.HeightCm,
		MatBorderCm: data.MatBorderCm,
		ExtraPrice:  data.ExtraPrice,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromFrameOptionDomain converts a domain FrameOption entity to a GORM FrameOptionModel.
func fromFrameOptionDomain(data *entity.FrameOption) *model.FrameOptionModel {
	if data == nil {
		return nil
	}

	return &model.FrameOptionModel{
		ID:          data.ID,
		Style:       data.Style,
		Material:    data.Material,
		Color:       data.Color,
		WidthCm:     data.WidthCm,
		HeightCm:    data.HeightCm,
		MatBorderCm: data.MatBorderCm,
		ExtraPrice:  data.ExtraPrice,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
