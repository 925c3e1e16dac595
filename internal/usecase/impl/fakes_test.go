package impl

import (
	"context"
	"errors"
	"sort"
	"time"

	"alufactory/internal/domain/entity"
	"alufactory/internal/domain/repository"
	"alufactory/internal/domain/service"

	"github.com/google/uuid"
)

// The fakes below back the service tests with plain in-memory maps. They
// honor the same error contracts as the GORM implementations so the
// services cannot tell the difference.

type fakeStore struct {
	users        map[uuid.UUID]*entity.User
	addresses    map[uuid.UUID]*entity.Address
	carts        map[uuid.UUID]*entity.Cart
	cartItems    map[uuid.UUID]*entity.CartItem
	orders       map[uuid.UUID]*entity.Order
	profiles     map[uuid.UUID]*entity.Profile
	settings     map[string]*entity.SystemSetting
	frameOptions map[uuid.UUID]*entity.FrameOption
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[uuid.UUID]*entity.User),
		addresses:    make(map[uuid.UUID]*entity.Address),
		carts:        make(map[uuid.UUID]*entity.Cart),
		cartItems:    make(map[uuid.UUID]*entity.CartItem),
		orders:       make(map[uuid.UUID]*entity.Order),
		profiles:     make(map[uuid.UUID]*entity.Profile),
		settings:     make(map[string]*entity.SystemSetting),
		frameOptions: make(map[uuid.UUID]*entity.FrameOption),
	}
}

// --- Transaction manager ---

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeFactory{store: m.store})
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUserRepository() repository.UserRepository {
	return &fakeUserRepo{store: f.store}
}

func (f *fakeFactory) NewAddressRepository() repository.AddressRepository {
	return &fakeAddressRepo{store: f.store}
}

func (f *fakeFactory) NewCartRepository() repository.CartRepository {
	return &fakeCartRepo{store: f.store}
}

func (f *fakeFactory) NewOrderRepository() repository.OrderRepository {
	return &fakeOrderRepo{store: f.store}
}

func (f *fakeFactory) NewProfileRepository() repository.ProfileRepository {
	return &fakeProfileRepo{store: f.store}
}

func (f *fakeFactory) NewSettingRepository() repository.SettingRepository {
	return &fakeSettingRepo{store: f.store}
}

func (f *fakeFactory) NewFrameOptionRepository() repository.FrameOptionRepository {
	return &fakeFrameOptionRepo{store: f.store}
}

// --- User repository ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Phone == phone {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.store.users {
		if existing.Username == user.Username || existing.Phone == user.Phone ||
			(user.Email != "" && existing.Email == user.Email) {
			return repository.ErrUserDuplicate
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.store.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = time.Now()
	copied := *user
	r.store.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.store.users, id)

	// Mirror the ON DELETE CASCADE constraints on the owning foreign keys.
	for addrID, address := range r.store.addresses {
		if address.UserID == id {
			delete(r.store.addresses, addrID)
		}
	}
	for cartID, cart := range r.store.carts {
		if cart.UserID != id {
			continue
		}
		for itemID, item := range r.store.cartItems {
			if item.CartID == cartID {
				delete(r.store.cartItems, itemID)
			}
		}
		delete(r.store.carts, cartID)
	}
	for orderID, order := range r.store.orders {
		if order.UserID == id {
			delete(r.store.orders, orderID)
		}
	}
	for profileID, profile := range r.store.profiles {
		if profile.UserID == id {
			delete(r.store.profiles, profileID)
		}
	}

	return nil
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })

	return paginate(users, offset, limit), nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.users)), nil
}

func (r *fakeUserRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, user := range r.store.users {
		if user.IsActive {
			count++
		}
	}

	return count, nil
}

// --- Address repository ---

type fakeAddressRepo struct {
	store *fakeStore
}

func (r *fakeAddressRepo) Create(_ context.Context, address *entity.Address) error {
	address.ID = uuid.New()
	address.CreatedAt = time.Now()
	address.UpdatedAt = address.CreatedAt
	copied := *address
	r.store.addresses[address.ID] = &copied

	return nil
}

func (r *fakeAddressRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	address, ok := r.store.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}

	copied := *address

	return &copied, nil
}

func (r *fakeAddressRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses := make([]*entity.Address, 0)
	for _, address := range r.store.addresses {
		if address.UserID == userID {
			copied := *address
			addresses = append(addresses, &copied)
		}
	}
	sort.Slice(addresses, func(i, j int) bool {
		if addresses[i].IsDefault != addresses[j].IsDefault {
			return addresses[i].IsDefault
		}

		return addresses[i].CreatedAt.After(addresses[j].CreatedAt)
	})

	return addresses, nil
}

func (r *fakeAddressRepo) Update(_ context.Context, address *entity.Address) error {
	if _, ok := r.store.addresses[address.ID]; !ok {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = time.Now()
	copied := *address
	r.store.addresses[address.ID] = &copied

	return nil
}

func (r *fakeAddressRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.addresses[id]; !ok {
		return repository.ErrAddressNotFound
	}
	delete(r.store.addresses, id)

	return nil
}

func (r *fakeAddressRepo) ClearDefault(_ context.Context, userID uuid.UUID) error {
	for _, address := range r.store.addresses {
		if address.UserID == userID {
			address.IsDefault = false
		}
	}

	return nil
}

// --- Cart repository ---

type fakeCartRepo struct {
	store *fakeStore
}

func (r *fakeCartRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	for _, cart := range r.store.carts {
		if cart.UserID == userID {
			copied := *cart
			copied.Items = r.itemsOf(cart.ID)

			return &copied, nil
		}
	}

	return nil, repository.ErrCartNotFound
}

func (r *fakeCartRepo) Create(_ context.Context, cart *entity.Cart) error {
	cart.ID = uuid.New()
	cart.CreatedAt = time.Now()
	cart.UpdatedAt = cart.CreatedAt
	copied := *cart
	copied.Items = nil
	r.store.carts[cart.ID] = &copied

	return nil
}

func (r *fakeCartRepo) FindItemByID(_ context.Context, itemID uuid.UUID) (*entity.CartItem, error) {
	item, ok := r.store.cartItems[itemID]
	if !ok {
		return nil, repository.ErrCartItemNotFound
	}

	copied := *item

	return &copied, nil
}

func (r *fakeCartRepo) UpsertItem(_ context.Context, item *entity.CartItem) error {
	for _, existing := range r.store.cartItems {
		if existing.CartID == item.CartID && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			existing.TotalPrice = existing.UnitPrice * float64(existing.Quantity)
			existing.UpdatedAt = time.Now()

			return nil
		}
	}

	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	copied := *item
	r.store.cartItems[item.ID] = &copied

	return nil
}

func (r *fakeCartRepo) UpdateItem(_ context.Context, item *entity.CartItem) error {
	if _, ok := r.store.cartItems[item.ID]; !ok {
		return repository.ErrCartItemNotFound
	}

	item.UpdatedAt = time.Now()
	copied := *item
	r.store.cartItems[item.ID] = &copied

	return nil
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	if _, ok := r.store.cartItems[itemID]; !ok {
		return repository.ErrCartItemNotFound
	}
	delete(r.store.cartItems, itemID)

	return nil
}

func (r *fakeCartRepo) DeleteItemsByCart(_ context.Context, cartID uuid.UUID) error {
	for id, item := range r.store.cartItems {
		if item.CartID == cartID {
			delete(r.store.cartItems, id)
		}
	}

	return nil
}

func (r *fakeCartRepo) Touch(_ context.Context, cartID uuid.UUID) error {
	if cart, ok := r.store.carts[cartID]; ok {
		cart.UpdatedAt = time.Now()
	}

	return nil
}

func (r *fakeCartRepo) itemsOf(cartID uuid.UUID) []*entity.CartItem {
	items := make([]*entity.CartItem, 0)
	for _, item := range r.store.cartItems {
		if item.CartID == cartID {
			copied := *item
			items = append(items, &copied)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })

	return items
}

// --- Order repository ---

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	for _, item := range order.Items {
		item.ID = uuid.New()
		item.OrderID = order.ID
		item.CreatedAt = order.CreatedAt
	}
	copied := *order
	r.store.orders[order.ID] = &copied

	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.store.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	copied := *order

	return &copied, nil
}

func (r *fakeOrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)
	for _, order := range r.store.orders {
		if r.matches(order, filter) {
			copied := *order
			orders = append(orders, &copied)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	return paginate(orders, filter.Offset, filter.Limit), nil
}

func (r *fakeOrderRepo) CountByFilter(_ context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64
	for _, order := range r.store.orders {
		if r.matches(order, filter) {
			count++
		}
	}

	return count, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	if _, ok := r.store.orders[order.ID]; !ok {
		return repository.ErrOrderNotFound
	}

	order.UpdatedAt = time.Now()
	copied := *order
	r.store.orders[order.ID] = &copied

	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(r.store.orders, id)

	return nil
}

func (r *fakeOrderRepo) FindItemsByProductType(_ context.Context, productType entity.ProductType) ([]*entity.OrderItem, error) {
	items := make([]*entity.OrderItem, 0)
	for _, order := range r.store.orders {
		if order.Status == entity.OrderStatusCancelled {
			continue
		}
		for _, item := range order.Items {
			if item.ProductType == productType {
				copied := *item
				items = append(items, &copied)
			}
		}
	}

	return items, nil
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context) (map[entity.OrderStatus]int64, error) {
	counts := make(map[entity.OrderStatus]int64)
	for _, order := range r.store.orders {
		counts[order.Status]++
	}

	return counts, nil
}

func (r *fakeOrderRepo) SumRevenue(_ context.Context, statuses []entity.OrderStatus) (float64, error) {
	var sum float64
	for _, order := range r.store.orders {
		for _, status := range statuses {
			if order.Status == status {
				sum += order.TotalAmount

				break
			}
		}
	}

	return sum, nil
}

func (r *fakeOrderRepo) matches(order *entity.Order, filter repository.OrderFilter) bool {
	if filter.UserID != uuid.Nil && order.UserID != filter.UserID {
		return false
	}
	if filter.Status != "" && order.Status != filter.Status {
		return false
	}
	if filter.ProductType != "" {
		found := false
		for _, item := range order.Items {
			if item.ProductType == filter.ProductType {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// --- Profile repository ---

type fakeProfileRepo struct {
	store *fakeStore
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	for _, existing := range r.store.profiles {
		if existing.UserID == profile.UserID {
			return repository.ErrProfileDuplicate
		}
	}

	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	copied := *profile
	r.store.profiles[profile.ID] = &copied

	return nil
}

func (r *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, ok := r.store.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	copied := *profile

	return &copied, nil
}

func (r *fakeProfileRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	profiles := make([]*entity.Profile, 0)
	for _, profile := range r.store.profiles {
		if profile.UserID == userID {
			copied := *profile
			profiles = append(profiles, &copied)
		}
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].CreatedAt.After(profiles[j].CreatedAt) })

	return profiles, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *entity.Profile) error {
	if _, ok := r.store.profiles[profile.ID]; !ok {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = time.Now()
	copied := *profile
	r.store.profiles[profile.ID] = &copied

	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.profiles[id]; !ok {
		return repository.ErrProfileNotFound
	}
	delete(r.store.profiles, id)

	return nil
}

func (r *fakeProfileRepo) List(_ context.Context, offset, limit int) ([]*entity.Profile, error) {
	profiles := make([]*entity.Profile, 0, len(r.store.profiles))
	for _, profile := range r.store.profiles {
		copied := *profile
		profiles = append(profiles, &copied)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].CreatedAt.After(profiles[j].CreatedAt) })

	return paginate(profiles, offset, limit), nil
}

func (r *fakeProfileRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.profiles)), nil
}

// --- Setting repository ---

type fakeSettingRepo struct {
	store *fakeStore
}

func (r *fakeSettingRepo) FindByKey(_ context.Context, key string) (*entity.SystemSetting, error) {
	setting, ok := r.store.settings[key]
	if !ok {
		return nil, repository.ErrSettingNotFound
	}

	copied := *setting

	return &copied, nil
}

func (r *fakeSettingRepo) Upsert(_ context.Context, setting *entity.SystemSetting) error {
	if existing, ok := r.store.settings[setting.Key]; ok {
		existing.Value = setting.Value
		existing.UpdatedAt = time.Now()

		return nil
	}

	setting.ID = uuid.New()
	setting.CreatedAt = time.Now()
	setting.UpdatedAt = setting.CreatedAt
	copied := *setting
	r.store.settings[setting.Key] = &copied

	return nil
}

// --- Frame option repository ---

type fakeFrameOptionRepo struct {
	store *fakeStore
}

func (r *fakeFrameOptionRepo) Create(_ context.Context, option *entity.FrameOption) error {
	option.ID = uuid.New()
	option.CreatedAt = time.Now()
	option.UpdatedAt = option.CreatedAt
	copied := *option
	r.store.frameOptions[option.ID] = &copied

	return nil
}

func (r *fakeFrameOptionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FrameOption, error) {
	option, ok := r.store.frameOptions[id]
	if !ok {
		return nil, repository.ErrFrameOptionNotFound
	}

	copied := *option

	return &copied, nil
}

func (r *fakeFrameOptionRepo) FindActive(_ context.Context) ([]*entity.FrameOption, error) {
	options := make([]*entity.FrameOption, 0)
	for _, option := range r.store.frameOptions {
		if option.IsActive {
			copied := *option
			options = append(options, &copied)
		}
	}
	sort.Slice(options, func(i, j int) bool { return options[i].CreatedAt.Before(options[j].CreatedAt) })

	return options, nil
}

func (r *fakeFrameOptionRepo) FindAll(_ context.Context) ([]*entity.FrameOption, error) {
	options := make([]*entity.FrameOption, 0, len(r.store.frameOptions))
	for _, option := range r.store.frameOptions {
		copied := *option
		options = append(options, &copied)
	}
	sort.Slice(options, func(i, j int) bool { return options[i].CreatedAt.Before(options[j].CreatedAt) })

	return options, nil
}

func (r *fakeFrameOptionRepo) Update(_ context.Context, option *entity.FrameOption) error {
	if _, ok := r.store.frameOptions[option.ID]; !ok {
		return repository.ErrFrameOptionNotFound
	}

	option.UpdatedAt = time.Now()
	copied := *option
	r.store.frameOptions[option.ID] = &copied

	return nil
}

// --- Domain service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(userID uuid.UUID, _ []string) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, errors.New("not supported")
}

type fakeDocumentStore struct {
	files    map[string][]byte
	failSave bool
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{files: make(map[string][]byte)}
}

func (s *fakeDocumentStore) Save(ownerID, filename string, data []byte) (string, error) {
	if s.failSave {
		return "", errors.New("disk full")
	}

	path := ownerID + "_" + filename
	s.files[path] = data

	return path, nil
}

func (s *fakeDocumentStore) Load(path string) ([]byte, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, errors.New("file not found")
	}

	return data, nil
}

func (s *fakeDocumentStore) Remove(path string) error {
	delete(s.files, path)

	return nil
}

type fakeQRCodeService struct{}

func (fakeQRCodeService) GenerateOrderQR(orderNumber string) ([]byte, error) {
	return []byte("qr:" + orderNumber), nil
}

// paginate slices a sorted result set the way OFFSET/LIMIT would.
func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}
