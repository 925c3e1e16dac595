package impl

import (
	"context"
	"log/slog"

	deliverycontext "alufactory/internal/delivery/context"
	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/domain/service"
	"alufactory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager     repository.TransactionManager
	profileRepo   repository.ProfileRepository
	documentStore service.DocumentStore
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProfileRepo   repository.ProfileRepository
	DocumentStore service.DocumentStore
	Logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:     params.TxManager,
		profileRepo:   params.ProfileRepo,
		documentStore: params.DocumentStore,
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMine returns the caller's profiles.
func (srv *profileService) ListMine(ctx context.Context, actor usecase.Actor) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// Get returns a profile by ID; owner or admin only.
func (srv *profileService) Get(ctx context.Context, actor usecase.Actor, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.findProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccess(profile.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return profile, nil
}

// Create saves the caller's profile. The PDF, when present, is decoded
// and written to disk; the base64 payload is kept in the row either way.
func (srv *profileService) Create(ctx context.Context, actor usecase.Actor, input usecase.CreateProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{
		UserID:      actor.UserID,
		ProfileName: input.ProfileName,
		ProfileData: input.ProfileData,
		PDFFilename: input.PDFFilename,
		PDFBase64:   input.PDFBase64,
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}

	if input.PDFBase64 != "" {
		path, err := srv.storeDocument(ctx, actor.UserID, input.PDFFilename, input.PDFBase64)
		if err != nil {
			return nil, err
		}
		profile.PDFPath = path
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProfileRepository().Create(ctx, profile)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileDuplicate) {
			return nil, domainerrors.ErrProfileAlreadyExists
		}

		return nil, err
	}

	srv.log(ctx).Info("Profile created",
		slog.Any("profileID", profile.ID),
		slog.Any("userID", actor.UserID),
	)

	return profile, nil
}

// Update patches a profile; owner only. A replacement PDF is decoded and
// stored before the row is written.
func (srv *profileService) Update(ctx context.Context, actor usecase.Actor, profileID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profile, err := profileRepo.FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if profile.UserID != actor.UserID {
			return domainerrors.ErrForbidden
		}

		if input.ProfileName != nil {
			profile.ProfileName = *input.ProfileName
		}
		if input.ProfileData != nil {
			profile.ProfileData = *input.ProfileData
		}
		if input.Address != nil {
			profile.Address = *input.Address
		}
		if input.PDFFilename != nil {
			profile.PDFFilename = *input.PDFFilename
		}
		if input.PDFBase64 != nil {
			path, err := srv.storeDocument(ctx, actor.UserID, profile.PDFFilename, *input.PDFBase64)
			if err != nil {
				return err
			}
			profile.PDFBase64 = *input.PDFBase64
			profile.PDFPath = path
		}

		if err := profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		updated = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a profile and its on-disk document; owner only.
func (srv *profileService) Delete(ctx context.Context, actor usecase.Actor, profileID uuid.UUID) error {
	profile, err := srv.findProfile(ctx, profileID)
	if err != nil {
		return err
	}

	if profile.UserID != actor.UserID {
		return domainerrors.ErrForbidden
	}

	if err := srv.profileRepo.Delete(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	if profile.PDFPath != "" {
		if err := srv.documentStore.Remove(profile.PDFPath); err != nil {
			srv.log(ctx).Warn("Failed to remove profile document",
				slog.String("path", profile.PDFPath), slog.Any("error", err))
		}
	}

	return nil
}

// GetDocument streams the profile's PDF; owner or admin only. The
// filesystem copy is preferred and the stored base64 is the fallback.
func (srv *profileService) GetDocument(ctx context.Context, actor usecase.Actor, profileID uuid.UUID) (*usecase.ProfileDocument, error) {
	profile, err := srv.Get(ctx, actor, profileID)
	if err != nil {
		return nil, err
	}

	filename := profile.PDFFilename
	if filename == "" {
		filename = "document.pdf"
	}

	if profile.PDFPath != "" {
		data, err := srv.documentStore.Load(profile.PDFPath)
		if err == nil {
			return &usecase.ProfileDocument{Filename: filename, Data: data}, nil
		}
		srv.log(ctx).Warn("Profile document missing on disk, falling back to base64",
			slog.String("path", profile.PDFPath), slog.Any("error", err))
	}

	if profile.PDFBase64 == "" {
		return nil, domainerrors.ErrDocumentNotFound
	}

	data, err := decodeDocumentBase64(profile.PDFBase64)
	if err != nil {
		return nil, domainerrors.ErrDocumentNotFound.WrapMessage("stored document is unreadable")
	}

	return &usecase.ProfileDocument{Filename: filename, Data: data}, nil
}

func (srv *profileService) findProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// storeDocument decodes the base64 payload and writes it to disk. The
// base64 copy stays authoritative, so a disk failure only logs a warning
// and yields an empty path.
func (srv *profileService) storeDocument(ctx context.Context, ownerID uuid.UUID, filename, rawBase64 string) (string, error) {
	data, err := decodeDocumentBase64(rawBase64)
	if err != nil {
		return "", err
	}

	if filename == "" {
		filename = "document.pdf"
	}

	path, err := srv.documentStore.Save(ownerID.String(), filename, data)
	if err != nil {
		srv.log(ctx).Warn("Failed to write profile document to disk, keeping base64 copy only",
			slog.Any("ownerID", ownerID), slog.Any("error", err))

		return "", nil
	}

	return path, nil
}
