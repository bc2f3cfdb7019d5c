package services

import (
	"context"
	"strings"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/infra/cache"
	"marketplace/internal/repository"
)

type SettingsService struct {
	cacheSlot
	settings repository.SettingsRepository
}

func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	return readThrough(ctx, s.cache, cache.KeySettings, s.cacheTTL, func() (*domain.PlatformSettings, error) {
		out, err := s.settings.Get(ctx)
		if err != nil {
			return nil, domain.Storage(err)
		}
		return out, nil
	})
}

func (s *SettingsService) Update(ctx context.Context, p *auth.Principal, upd domain.SettingsUpdate) (*domain.PlatformSettings, error) {
	if err := auth.Authorize(p, auth.ActionUpdateSettings, nil).Err(); err != nil {
		return nil, err
	}
	if upd.PlatformName == nil && upd.PlatformLogo == nil {
		return nil, domain.ErrMissingFields.WithMessage("nothing to update")
	}
	if upd.PlatformName != nil && strings.TrimSpace(*upd.PlatformName) == "" {
		return nil, domain.ErrInvalidInput.WithMessage("platform name cannot be empty")
	}

	out, err := s.settings.Update(ctx, upd)
	if err != nil {
		return nil, domain.Storage(err)
	}
	invalidate(ctx, s.cache, cache.KeySettings)
	return out, nil
}
