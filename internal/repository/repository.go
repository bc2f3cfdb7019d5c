package repository

import (
	"context"

	"marketplace/internal/domain"

	"github.com/google/uuid"
)

// Lookups return nil, nil when the record does not exist. Uniqueness
// violations come back as domain.ErrEmailTaken or domain.ErrAdminExists;
// anything else is a raw storage error.

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindAdmin(ctx context.Context) (*domain.User, error)
	// PromoteToAdmin claims the admin slot for id in a single conditional
	// write.
	PromoteToAdmin(ctx context.Context, id uuid.UUID) error
	UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) error
	// TransitionVendor moves a seller from one state to another only if it
	// is still in from. It reports whether the row changed.
	TransitionVendor(ctx context.Context, id uuid.UUID, from, to domain.VendorStatus) (bool, error)
	ListSellers(ctx context.Context, status *domain.VendorStatus) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Product, error)
	// UpdateOwned and DeleteOwned filter on id and seller together and
	// report false when no row matched.
	UpdateOwned(ctx context.Context, sellerID uuid.UUID, p *domain.Product) (bool, error)
	DeleteOwned(ctx context.Context, sellerID, id uuid.UUID) (bool, error)
	// OwnersOf maps every product of the given sellers to its seller.
	OwnersOf(ctx context.Context, sellerIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
}

type FactoryRepository interface {
	Create(ctx context.Context, f *domain.Factory) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Factory, error)
	FindBySellerAndName(ctx context.Context, sellerID uuid.UUID, name string) (*domain.Factory, error)
	ListAll(ctx context.Context) ([]domain.Factory, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Factory, error)
	UpdateOwned(ctx context.Context, sellerID uuid.UUID, f *domain.Factory) (bool, error)
	DeleteOwned(ctx context.Context, sellerID, id uuid.UUID) (bool, error)
}

type OrderRepository interface {
	Save(ctx context.Context, o *domain.Order) error
	FindForCustomer(ctx context.Context, customerID, id uuid.UUID) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error)
	Count(ctx context.Context) (int64, error)
	// EachBatch streams every order with its items to fn, batchSize at a
	// time.
	EachBatch(ctx context.Context, batchSize int, fn func([]domain.Order) error) error
}

type SettingsRepository interface {
	// Get returns the singleton row, creating it with defaults if absent.
	Get(ctx context.Context) (*domain.PlatformSettings, error)
	Update(ctx context.Context, upd domain.SettingsUpdate) (*domain.PlatformSettings, error)
}
