package impl

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"alufactory/internal/domain/entity"
	"alufactory/internal/usecase"

	"github.com/stretchr/testify/require"
)

// testEnv wires every service against one shared in-memory store, so a
// test can observe cross-service effects such as profiles written through
// the order surface.
type testEnv struct {
	store    *fakeStore
	docs     *fakeDocumentStore
	users    usecase.UserUsecase
	addrs    usecase.AddressUsecase
	carts    usecase.CartUsecase
	orders   usecase.OrderUsecase
	boards   usecase.BoardUsecase
	profiles usecase.ProfileUsecase
	admin    usecase.AdminUsecase
}

func newTestEnv() *testEnv {
	store := newFakeStore()
	docs := newFakeDocumentStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := &fakeTxManager{store: store}
	factory := &fakeFactory{store: store}

	return &testEnv{
		store: store,
		docs:  docs,
		users: NewUserService(UserServiceParams{
			TxManager:    txManager,
			UserRepo:     factory.NewUserRepository(),
			AddressRepo:  factory.NewAddressRepository(),
			Hasher:       fakeHasher{},
			TokenService: fakeTokenService{},
			Logger:       logger,
		}),
		addrs: NewAddressService(AddressServiceParams{
			TxManager:   txManager,
			AddressRepo: factory.NewAddressRepository(),
			Logger:      logger,
		}),
		carts: NewCartService(CartServiceParams{
			TxManager: txManager,
			CartRepo:  factory.NewCartRepository(),
			Logger:    logger,
		}),
		orders: NewOrderService(OrderServiceParams{
			TxManager:     txManager,
			OrderRepo:     factory.NewOrderRepository(),
			ProfileRepo:   factory.NewProfileRepository(),
			DocumentStore: docs,
			QRCodeService: fakeQRCodeService{},
			Logger:        logger,
		}),
		boards: NewBoardService(BoardServiceParams{
			SettingRepo:     factory.NewSettingRepository(),
			OrderRepo:       factory.NewOrderRepository(),
			FrameOptionRepo: factory.NewFrameOptionRepository(),
			Logger:          logger,
		}),
		profiles: NewProfileService(ProfileServiceParams{
			TxManager:     txManager,
			ProfileRepo:   factory.NewProfileRepository(),
			DocumentStore: docs,
			Logger:        logger,
		}),
		admin: NewAdminService(AdminServiceParams{
			TxManager:   txManager,
			UserRepo:    factory.NewUserRepository(),
			OrderRepo:   factory.NewOrderRepository(),
			ProfileRepo: factory.NewProfileRepository(),
			FrameRepo:   factory.NewFrameOptionRepository(),
			Hasher:      fakeHasher{},
			Logger:      logger,
		}),
	}
}

// registerUser creates a customer account and returns its actor.
func (env *testEnv) registerUser(t *testing.T, phone string) usecase.Actor {
	t.Helper()

	out, err := env.users.Register(context.Background(), usecase.RegisterInput{
		Username: "user-" + phone,
		Phone:    phone,
		Password: "secret123",
	})
	require.NoError(t, err)

	return usecase.Actor{UserID: out.User.ID, Roles: out.User.Roles()}
}

// registerAdmin creates an account and flips its admin flag directly in
// the store, the way a seeded administrator row would look.
func (env *testEnv) registerAdmin(t *testing.T, phone string) usecase.Actor {
	t.Helper()

	actor := env.registerUser(t, phone)
	env.store.users[actor.UserID].IsAdmin = true

	return usecase.Actor{
		UserID: actor.UserID,
		Roles:  entity.Roles{entity.RoleUser, entity.RoleAdmin},
	}
}

// placeOrder creates a minimal one-item order for the actor.
func (env *testEnv) placeOrder(t *testing.T, actor usecase.Actor, productType entity.ProductType, total float64) *entity.Order {
	t.Helper()

	order, err := env.orders.CreateOrder(context.Background(), actor, usecase.CreateOrderInput{
		RecipientName: "王小明",
		Phone:         "0912345678",
		Province:      "台北市",
		AddressDetail: "信義路一段 1 號",
		Subtotal:      total,
		TotalAmount:   total,
		Items: []usecase.OrderItemInput{{
			ProductID:   "frame-a4",
			ProductName: "A4 相框",
			ProductType: productType,
			Quantity:    1,
			UnitPrice:   total,
			TotalPrice:  total,
		}},
	})
	require.NoError(t, err)

	return order
}

func pdfBase64(data string) string {
	return base64.StdEncoding.EncodeToString([]byte(data))
}
