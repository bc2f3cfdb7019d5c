package mocks

import (
	"context"
	"time"

	"marketplace/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

type MockProductRepository struct {
	mock.Mock
}

type MockFactoryRepository struct {
	mock.Mock
}

type MockOrderRepository struct {
	mock.Mock
}

type MockSettingsRepository struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

type MockCache struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func userOrNil(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return userOrNil(m.Called(ctx, id))
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return userOrNil(m.Called(ctx, email))
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return userOrNil(m.Called(ctx, phone))
}

func (m *MockUserRepository) FindAdmin(ctx context.Context) (*domain.User, error) {
	return userOrNil(m.Called(ctx))
}

func (m *MockUserRepository) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockUserRepository) TransitionVendor(ctx context.Context, id uuid.UUID, from, to domain.VendorStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListSellers(ctx context.Context, status *domain.VendorStatus) ([]domain.User, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func productOrNil(args mock.Arguments) (*domain.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func products(args mock.Arguments) ([]domain.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return productOrNil(m.Called(ctx, id))
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	return products(m.Called(ctx, ids))
}

func (m *MockProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	return products(m.Called(ctx))
}

func (m *MockProductRepository) Search(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	return products(m.Called(ctx, f))
}

func (m *MockProductRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Product, error) {
	return products(m.Called(ctx, sellerID))
}

func (m *MockProductRepository) UpdateOwned(ctx context.Context, sellerID uuid.UUID, p *domain.Product) (bool, error) {
	args := m.Called(ctx, sellerID, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) DeleteOwned(ctx context.Context, sellerID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, sellerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) OwnersOf(ctx context.Context, sellerIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	args := m.Called(ctx, sellerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]uuid.UUID), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func factoryOrNil(args mock.Arguments) (*domain.Factory, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factory), args.Error(1)
}

func factories(args mock.Arguments) ([]domain.Factory, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Factory), args.Error(1)
}

func (m *MockFactoryRepository) Create(ctx context.Context, f *domain.Factory) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFactoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Factory, error) {
	return factoryOrNil(m.Called(ctx, id))
}

func (m *MockFactoryRepository) FindBySellerAndName(ctx context.Context, sellerID uuid.UUID, name string) (*domain.Factory, error) {
	return factoryOrNil(m.Called(ctx, sellerID, name))
}

func (m *MockFactoryRepository) ListAll(ctx context.Context) ([]domain.Factory, error) {
	return factories(m.Called(ctx))
}

func (m *MockFactoryRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Factory, error) {
	return factories(m.Called(ctx, sellerID))
}

func (m *MockFactoryRepository) UpdateOwned(ctx context.Context, sellerID uuid.UUID, f *domain.Factory) (bool, error) {
	args := m.Called(ctx, sellerID, f)
	return args.Bool(0), args.Error(1)
}

func (m *MockFactoryRepository) DeleteOwned(ctx context.Context, sellerID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, sellerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindForCustomer(ctx context.Context, customerID, id uuid.UUID) (*domain.Order, error) {
	args := m.Called(ctx, customerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// EachBatch hands the orders given to Return to fn as a single batch.
func (m *MockOrderRepository) EachBatch(ctx context.Context, batchSize int, fn func([]domain.Order) error) error {
	args := m.Called(ctx, batchSize, fn)
	if batch, ok := args.Get(0).([]domain.Order); ok && len(batch) > 0 {
		if err := fn(batch); err != nil {
			return err
		}
	}
	return args.Error(1)
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformSettings), args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, upd domain.SettingsUpdate) (*domain.PlatformSettings, error) {
	args := m.Called(ctx, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformSettings), args.Error(1)
}
