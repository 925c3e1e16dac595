package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "alufactory/internal/delivery/context"
	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// boardService implements the BoardUsecase interface.
type boardService struct {
	settingRepo     repository.SettingRepository
	orderRepo       repository.OrderRepository
	frameOptionRepo repository.FrameOptionRepository
	logger          *slog.Logger
}

// BoardServiceParams holds dependencies for boardService, injected by Fx.
type BoardServiceParams struct {
	fx.In

	SettingRepo     repository.SettingRepository
	OrderRepo       repository.OrderRepository
	FrameOptionRepo repository.FrameOptionRepository
	Logger          *slog.Logger
}

// NewBoardService is the constructor for boardService.
func NewBoardService(params BoardServiceParams) usecase.BoardUsecase {
	return &boardService{
		settingRepo:     params.SettingRepo,
		orderRepo:       params.OrderRepo,
		frameOptionRepo: params.FrameOptionRepo,
		logger:          params.Logger,
	}
}

func (srv *boardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSettings returns the effective shared-board settings for a product
// type. A missing setting row means no override was ever stored and the
// hardcoded defaults apply as-is.
func (srv *boardService) GetSettings(ctx context.Context, productType entity.ProductType) (*entity.SharedBoardSettings, error) {
	defaults := entity.DefaultSharedBoardSettings(productType)

	setting, err := srv.settingRepo.FindByKey(ctx, entity.SharedBoardSettingsKey(productType))
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return &defaults, nil
		}

		return nil, errors.Wrap(err, "failed to load shared board settings")
	}

	patch, err := decodeSettingsPatch(setting.Value)
	if err != nil {
		srv.log(ctx).Warn("Stored shared board settings are malformed, serving defaults",
			slog.String("key", setting.Key), slog.Any("error", err))

		return &defaults, nil
	}

	merged := entity.MergeSharedBoardSettings(defaults, patch)

	return &merged, nil
}

// UpdateSettings stores an override patch for a product type; admin only.
// The returned settings are the patch merged over the defaults, exactly
// what subsequent GetSettings calls will serve.
func (srv *boardService) UpdateSettings(ctx context.Context, actor usecase.Actor, productType entity.ProductType, patch entity.SharedBoardSettingsPatch) (*entity.SharedBoardSettings, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	value, err := encodeSettingsPatch(patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode shared board settings")
	}

	setting := &entity.SystemSetting{
		Key:   entity.SharedBoardSettingsKey(productType),
		Value: value,
	}
	if err := srv.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, errors.Wrap(err, "failed to store shared board settings")
	}

	srv.log(ctx).Info("Shared board settings updated",
		slog.String("productType", productType.String()),
		slog.Any("adminID", actor.UserID),
	)

	merged := entity.MergeSharedBoardSettings(entity.DefaultSharedBoardSettings(productType), patch)

	return &merged, nil
}

// GetReservations flattens the piece rectangles of every non-cancelled
// order item of the product type. Items without a well-formed pieces list
// in their configuration are skipped.
func (srv *boardService) GetReservations(ctx context.Context, productType entity.ProductType) (*usecase.BoardReservations, error) {
	items, err := srv.orderRepo.FindItemsByProductType(ctx, productType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	pieces := make([]entity.BoardPiece, 0)
	for _, item := range items {
		pieces = append(pieces, piecesFromConfig(item.Config)...)
	}

	return &usecase.BoardReservations{
		ProductType: productType,
		Pieces:      pieces,
	}, nil
}

// ListFrameOptions returns the active frame option catalog.
func (srv *boardService) ListFrameOptions(ctx context.Context) ([]*entity.FrameOption, error) {
	options, err := srv.frameOptionRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list frame options")
	}

	return options, nil
}

// decodeSettingsPatch converts a stored JSON value into a settings patch
// through a marshal round trip, so numeric types normalize the same way
// they did on the way in.
func decodeSettingsPatch(value map[string]any) (entity.SharedBoardSettingsPatch, error) {
	var patch entity.SharedBoardSettingsPatch

	raw, err := json.Marshal(value)
	if err != nil {
		return patch, err
	}
	if err := json.Unmarshal(raw, &patch); err != nil {
		return patch, err
	}

	return patch, nil
}

func encodeSettingsPatch(patch entity.SharedBoardSettingsPatch) (map[string]any, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}

	var value map[string]any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}

	return value, nil
}

// piecesFromConfig extracts the reserved rectangles from an order item
// configuration. The pieces key holds a list of objects with x, y, width
// and height; malformed entries are dropped silently.
func piecesFromConfig(config map[string]any) []entity.BoardPiece {
	rawPieces, ok := config["pieces"].([]any)
	if !ok {
		return nil
	}

	pieces := make([]entity.BoardPiece, 0, len(rawPieces))
	for _, rawPiece := range rawPieces {
		fields, ok := rawPiece.(map[string]any)
		if !ok {
			continue
		}

		x, okX := toFloat(fields["x"])
		y, okY := toFloat(fields["y"])
		width, okW := toFloat(fields["width"])
		height, okH := toFloat(fields["height"])
		if !okX || !okY || !okW || !okH {
			continue
		}

		pieces = append(pieces, entity.BoardPiece{X: x, Y: y, Width: width, Height: height})
	}

	return pieces
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()

		return f, err == nil
	default:
		return 0, false
	}
}
