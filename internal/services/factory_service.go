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

type FactoryService struct {
	cacheSlot
	factories repository.FactoryRepository
}

func NewFactoryService(factories repository.FactoryRepository) *FactoryService {
	return &FactoryService{factories: factories}
}

// ListPublic returns every factory, newest first.
func (s *FactoryService) ListPublic(ctx context.Context) ([]domain.Factory, error) {
	return readThrough(ctx, s.cache, cache.KeyPublicFactories, s.cacheTTL, func() ([]domain.Factory, error) {
		out, err := s.factories.ListAll(ctx)
		if err != nil {
			return nil, domain.Storage(err)
		}
		return out, nil
	})
}

func (s *FactoryService) ListMine(ctx context.Context, p *auth.Principal) ([]domain.Factory, error) {
	if err := auth.Authorize(p, auth.ActionListMyFactories, nil).Err(); err != nil {
		return nil, err
	}
	out, err := s.factories.ListBySeller(ctx, p.ID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	return out, nil
}

func (s *FactoryService) Create(ctx context.Context, p *auth.Principal, in domain.FactoryInput) (*domain.Factory, error) {
	if err := auth.Authorize(p, auth.ActionCreateFactory, nil).Err(); err != nil {
		return nil, err
	}
	if err := in.Validate(true); err != nil {
		return nil, err
	}
	f := domain.NewFactory(p.ID, in)
	if err := s.factories.Create(ctx, f); err != nil {
		return nil, domain.Storage(err)
	}
	invalidate(ctx, s.cache, cache.KeyPublicFactories)
	log.WithFields(log.Fields{"factory_id": f.ID, "seller_id": p.ID}).Info("factory created")
	return f, nil
}

func (s *FactoryService) Update(ctx context.Context, p *auth.Principal, id uuid.UUID, in domain.FactoryInput) (*domain.Factory, error) {
	f, err := s.owned(ctx, p, auth.ActionUpdateFactory, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(false); err != nil {
		return nil, err
	}
	f.Apply(in)

	ok, err := s.factories.UpdateOwned(ctx, p.ID, f)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if !ok {
		return nil, domain.ErrNotFoundOrNotOwned
	}
	invalidate(ctx, s.cache, cache.KeyPublicFactories)
	return f, nil
}

func (s *FactoryService) Delete(ctx context.Context, p *auth.Principal, id uuid.UUID) error {
	if _, err := s.owned(ctx, p, auth.ActionDeleteFactory, id); err != nil {
		return err
	}
	ok, err := s.factories.DeleteOwned(ctx, p.ID, id)
	if err != nil {
		return domain.Storage(err)
	}
	if !ok {
		return domain.ErrNotFoundOrNotOwned
	}
	invalidate(ctx, s.cache, cache.KeyPublicFactories)
	return nil
}

func (s *FactoryService) owned(ctx context.Context, p *auth.Principal, action auth.Action, id uuid.UUID) (*domain.Factory, error) {
	f, err := s.factories.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	var res *auth.Resource
	if f != nil {
		res = &auth.Resource{OwnerID: f.SellerID}
	}
	if err := auth.Authorize(p, action, res).Err(); err != nil {
		return nil, err
	}
	return f, nil
}
