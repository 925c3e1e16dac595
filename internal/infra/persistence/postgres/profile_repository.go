// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile. The unique user_id index enforces one
// profile per user at the database level.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUser retrieves all profiles of a user, newest first.
func (repo *profileRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by user")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// Update updates an existing profile record.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Delete removes a profile by its ID.
func (repo *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// List retrieves a page of profiles ordered by creation time, newest first.
func (repo *profileRepository) List(ctx context.Context, offset, limit int) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel
	query := repo.db.WithContext(ctx).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// Count returns the total number of profiles.
func (repo *profileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count profiles")
	}

	return count, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	var address entity.ProfileAddress
	if len(data.Address) > 0 {
		// A malformed snapshot degrades to an empty address rather than failing the read.
		_ = json.Unmarshal(data.Address, &address)
	}

	return &entity.Profile{
		ID:          data.ID,
		UserID:      data.UserID,
		ProfileName: data.ProfileName,
		ProfileData: fromJSONColumn(data.ProfileData),
		Address:     address,
		PDFPath:     data.PDFPath,
		PDFFilename: data.PDFFilename,
		PDFBase64:   data.PDFBase64,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	var address datatypes.JSON
	if raw, err := json.Marshal(data.Address); err == nil {
		address = datatypes.JSON(raw)
	}

	return &model.ProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		ProfileName: data.ProfileName,
		ProfileData: toJSONColumn(data.ProfileData),
		Address:     address,
		PDFPath:     data.PDFPath,
		PDFFilename: data.PDFFilename,
		PDFBase64:   data.PDFBase64,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
