package usecase

import (
	"context"

	"alufactory/internal/domain/entity"
)

// BoardReservations is the flattened rectangle list of every piece
// reserved on the shared board of one product type.
type BoardReservations struct {
	ProductType entity.ProductType
	Pieces      []entity.BoardPiece
}

// BoardUsecase exposes the shared-board configuration surface: effective
// settings, reserved pieces and the frame option catalog.
type BoardUsecase interface {
	// GetSettings returns the effective shared-board settings for a
	// product type: the stored override merged over hardcoded defaults.
	GetSettings(ctx context.Context, productType entity.ProductType) (*entity.SharedBoardSettings, error)

	// UpdateSettings upserts the stored override for a product type;
	// admin only. The stored value is returned merged over defaults.
	UpdateSettings(ctx context.Context, actor Actor, productType entity.ProductType, patch entity.SharedBoardSettingsPatch) (*entity.SharedBoardSettings, error)

	// GetReservations collects the piece rectangles of every
	// non-cancelled order item of the product type.
	GetReservations(ctx context.Context, productType entity.ProductType) (*BoardReservations, error)

	// ListFrameOptions returns the active frame option catalog.
	ListFrameOptions(ctx context.Context) ([]*entity.FrameOption, error)
}
