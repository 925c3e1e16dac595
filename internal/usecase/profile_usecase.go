package usecase

import (
	"context"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProfileInput defines the data required to save a profile.
type CreateProfileInput struct {
	ProfileName string
	ProfileData map[string]any
	Address     *entity.ProfileAddress
	PDFBase64   string
	PDFFilename string
}

// UpdateProfileInput is a partial update of a profile. Nil pointers leave
// the stored value untouched; a set PDFBase64 replaces the document.
type UpdateProfileInput struct {
	ProfileName *string
	ProfileData *map[string]any
	Address     *entity.ProfileAddress
	PDFBase64   *string
	PDFFilename *string
}

// ProfileDocument is the raw PDF of a profile, ready to stream.
type ProfileDocument struct {
	Filename string
	Data     []byte
}

// ProfileUsecase defines the interface for saved-profile operations.
type ProfileUsecase interface {
	// ListMine returns the caller's profiles (zero or one).
	ListMine(ctx context.Context, actor Actor) ([]*entity.Profile, error)

	// Get returns a profile including its base64 document; owner or admin only.
	Get(ctx context.Context, actor Actor, profileID uuid.UUID) (*entity.Profile, error)

	// Create saves the caller's profile. A second profile for the same
	// user is rejected.
	Create(ctx context.Context, actor Actor, input CreateProfileInput) (*entity.Profile, error)

	// Update patches a profile; owner only.
	Update(ctx context.Context, actor Actor, profileID uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)

	// Delete removes a profile and its stored document; owner only.
	Delete(ctx context.Context, actor Actor, profileID uuid.UUID) error

	// GetDocument streams the profile's PDF, preferring the filesystem
	// copy and falling back to the stored base64.
	GetDocument(ctx context.Context, actor Actor, profileID uuid.UUID) (*ProfileDocument, error)
}
