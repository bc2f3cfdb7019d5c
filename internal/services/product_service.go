package services

import (
	"context"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/infra/cache"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ProductService is the product half of the catalog. Every write is scoped
// to the owning seller.
type ProductService struct {
	cacheSlot
	products  repository.ProductRepository
	factories repository.FactoryRepository
	users     repository.UserRepository
}

func NewProductService(products repository.ProductRepository, factories repository.FactoryRepository, users repository.UserRepository) *ProductService {
	return &ProductService{products: products, factories: factories, users: users}
}

// ListPublic returns active products.
func (s *ProductService) ListPublic(ctx context.Context) ([]domain.Product, error) {
	return readThrough(ctx, s.cache, cache.KeyPublicProducts, s.cacheTTL, func() ([]domain.Product, error) {
		out, err := s.products.ListActive(ctx)
		if err != nil {
			return nil, domain.Storage(err)
		}
		return out, nil
	})
}

func (s *ProductService) Search(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	if f.Category != "" && !f.Category.Valid() {
		return nil, domain.ErrInvalidInput.WithMessage("unknown category %q", f.Category)
	}
	out, err := s.products.Search(ctx, f)
	if err != nil {
		return nil, domain.Storage(err)
	}
	return out, nil
}

// Get returns an active product to anyone and an inactive one only to its
// owner. Every other case reads as not found.
func (s *ProductService) Get(ctx context.Context, p *auth.Principal, id uuid.UUID) (*domain.Product, error) {
	prod, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	res := &auth.Resource{OwnerID: prod.SellerID, Public: prod.IsActive}
	if !auth.Authorize(p, auth.ActionViewProduct, res).Allowed {
		return nil, domain.ErrNotFound
	}
	return prod, nil
}

func (s *ProductService) ListMine(ctx context.Context, p *auth.Principal) ([]domain.Product, error) {
	if err := auth.Authorize(p, auth.ActionListMyProducts, nil).Err(); err != nil {
		return nil, err
	}
	out, err := s.products.ListBySeller(ctx, p.ID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	return out, nil
}

func (s *ProductService) Create(ctx context.Context, p *auth.Principal, in domain.ProductInput) (*domain.Product, error) {
	if err := auth.Authorize(p, auth.ActionCreateProduct, nil).Err(); err != nil {
		return nil, err
	}
	if err := in.Validate(true); err != nil {
		return nil, err
	}

	seller, err := s.users.FindByID(ctx, p.ID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if seller == nil {
		return nil, domain.ErrUserNotFound
	}

	prod := domain.NewProduct(p.ID, in)
	if prod.Brand == "" {
		prod.Brand = seller.Name
	}
	if err := s.resolveFactory(ctx, prod); err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, prod); err != nil {
		return nil, domain.Storage(err)
	}
	invalidate(ctx, s.cache, cache.KeyPublicProducts)
	log.WithFields(log.Fields{"product_id": prod.ID, "seller_id": p.ID}).Info("product created")
	return prod, nil
}

func (s *ProductService) Update(ctx context.Context, p *auth.Principal, id uuid.UUID, in domain.ProductInput) (*domain.Product, error) {
	prod, err := s.owned(ctx, p, auth.ActionUpdateProduct, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(false); err != nil {
		return nil, err
	}

	supplier := prod.Supplier
	prod.Apply(in)
	if prod.Supplier != supplier {
		prod.FactoryID = nil
		if err := s.resolveFactory(ctx, prod); err != nil {
			return nil, err
		}
	}

	ok, err := s.products.UpdateOwned(ctx, p.ID, prod)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if !ok {
		return nil, domain.ErrNotFoundOrNotOwned
	}
	invalidate(ctx, s.cache, cache.KeyPublicProducts)
	return prod, nil
}

func (s *ProductService) Delete(ctx context.Context, p *auth.Principal, id uuid.UUID) error {
	if _, err := s.owned(ctx, p, auth.ActionDeleteProduct, id); err != nil {
		return err
	}
	ok, err := s.products.DeleteOwned(ctx, p.ID, id)
	if err != nil {
		return domain.Storage(err)
	}
	if !ok {
		return domain.ErrNotFoundOrNotOwned
	}
	invalidate(ctx, s.cache, cache.KeyPublicProducts)
	log.WithFields(log.Fields{"product_id": id, "seller_id": p.ID}).Info("product deleted")
	return nil
}

// owned loads id and runs the policy against it. A missing product and a
// product owned by someone else produce the same error.
func (s *ProductService) owned(ctx context.Context, p *auth.Principal, action auth.Action, id uuid.UUID) (*domain.Product, error) {
	prod, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	var res *auth.Resource
	if prod != nil {
		res = &auth.Resource{OwnerID: prod.SellerID}
	}
	if err := auth.Authorize(p, action, res).Err(); err != nil {
		return nil, err
	}
	return prod, nil
}

// resolveFactory links the product to the seller's factory whose name
// equals the supplier. No match leaves the link empty.
func (s *ProductService) resolveFactory(ctx context.Context, prod *domain.Product) error {
	if prod.Supplier == "" {
		return nil
	}
	f, err := s.factories.FindBySellerAndName(ctx, prod.SellerID, prod.Supplier)
	if err != nil {
		return domain.Storage(err)
	}
	if f != nil {
		id := f.ID
		prod.FactoryID = &id
	}
	return nil
}
