package services

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/infra/cache"
	"marketplace/internal/repository"
)

// ProfileService covers self-service account data: the profile, the
// shipping preference, the seller's brand and the notification inbox.
type ProfileService struct {
	cacheSlot
	users repository.UserRepository
	now   func() time.Time
}

func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users, now: time.Now}
}

func (s *ProfileService) load(ctx context.Context, p *auth.Principal) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, p.ID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *ProfileService) Me(ctx context.Context, p *auth.Principal) (*domain.Profile, error) {
	if err := auth.Authorize(p, auth.ActionViewProfile, nil).Err(); err != nil {
		return nil, err
	}
	u, err := s.load(ctx, p)
	if err != nil {
		return nil, err
	}
	prof := u.Profile()
	return &prof, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, p *auth.Principal, upd domain.ProfileUpdate) (*domain.Profile, error) {
	if err := auth.Authorize(p, auth.ActionUpdateProfile, nil).Err(); err != nil {
		return nil, err
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, domain.ErrInvalidInput.WithMessage("name cannot be empty")
	}
	if upd.ShippingMethod != nil && !upd.ShippingMethod.Valid() {
		return nil, domain.ErrInvalidInput.WithMessage("invalid shipping method")
	}
	if upd.Email != nil {
		email := domain.NormalizeEmail(*upd.Email)
		if email == "" {
			return nil, domain.ErrInvalidInput.WithMessage("email cannot be empty")
		}
		other, err := s.users.FindByEmail(ctx, email)
		if err != nil {
			return nil, domain.Storage(err)
		}
		if other != nil && other.ID != p.ID {
			return nil, domain.ErrEmailTaken
		}
		upd.Email = &email
	}

	if err := s.users.UpdateProfile(ctx, p.ID, upd); err != nil {
		return nil, domain.Storage(err)
	}
	if upd.Name != nil || upd.Email != nil || upd.City != nil || upd.Logo != nil {
		invalidate(ctx, s.cache, cache.KeyBrands)
	}
	return s.Me(ctx, p)
}

func (s *ProfileService) UpdateShippingMethod(ctx context.Context, p *auth.Principal, method domain.ShippingMethod) (domain.ShippingMethod, error) {
	if method == "" {
		return "", domain.ErrMissingFields.WithMessage("shipping method is required")
	}
	if !method.Valid() {
		return "", domain.ErrInvalidInput.WithMessage("invalid shipping method")
	}
	prof, err := s.UpdateProfile(ctx, p, domain.ProfileUpdate{ShippingMethod: &method})
	if err != nil {
		return "", err
	}
	return prof.ShippingMethod, nil
}

// Brands lists every seller's public brand.
func (s *ProfileService) Brands(ctx context.Context) ([]domain.Brand, error) {
	return readThrough(ctx, s.cache, cache.KeyBrands, s.cacheTTL, func() ([]domain.Brand, error) {
		sellers, err := s.users.ListSellers(ctx, nil)
		if err != nil {
			return nil, domain.Storage(err)
		}
		brands := make([]domain.Brand, 0, len(sellers))
		for i := range sellers {
			brands = append(brands, sellers[i].Brand())
		}
		return brands, nil
	})
}

func (s *ProfileService) MyBrand(ctx context.Context, p *auth.Principal) (*domain.Brand, error) {
	if err := auth.Authorize(p, auth.ActionManageBrand, nil).Err(); err != nil {
		return nil, err
	}
	u, err := s.load(ctx, p)
	if err != nil {
		return nil, err
	}
	b := u.Brand()
	return &b, nil
}

// UpdateMyBrand changes the seller's display name and logo path. Empty
// values are ignored.
func (s *ProfileService) UpdateMyBrand(ctx context.Context, p *auth.Principal, name, logo string) (*domain.Brand, error) {
	if err := auth.Authorize(p, auth.ActionManageBrand, nil).Err(); err != nil {
		return nil, err
	}
	var upd domain.ProfileUpdate
	if n := strings.TrimSpace(name); n != "" {
		upd.Name = &n
	}
	if l := strings.TrimSpace(logo); l != "" {
		upd.Logo = &l
	}
	if !upd.Empty() {
		if err := s.users.UpdateProfile(ctx, p.ID, upd); err != nil {
			return nil, domain.Storage(err)
		}
		invalidate(ctx, s.cache, cache.KeyBrands)
	}
	return s.MyBrand(ctx, p)
}

// Notifications returns the static inbox. There is no delivery system
// behind it.
func (s *ProfileService) Notifications(ctx context.Context, p *auth.Principal) ([]domain.Notification, error) {
	if err := auth.Authorize(p, auth.ActionViewNotifications, nil).Err(); err != nil {
		return nil, err
	}
	now := s.now()
	return []domain.Notification{
		{
			ID:        1,
			Title:     "Welcome to " + domain.DefaultPlatformName,
			Message:   "Your account was created successfully",
			Type:      "info",
			CreatedAt: now,
		},
		{
			ID:        2,
			Title:     "Special offer",
			Message:   "10% off all building materials this week",
			Type:      "promotion",
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}, nil
}
