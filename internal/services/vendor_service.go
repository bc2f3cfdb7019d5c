package services

import (
	"context"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	rabbit "marketplace/internal/infra/rabbitmq"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// VendorService drives the seller approval lifecycle.
type VendorService struct {
	users     repository.UserRepository
	stats     *StatsService
	publisher rabbit.PublisherInterface
}

func NewVendorService(users repository.UserRepository, stats *StatsService, pub rabbit.PublisherInterface) *VendorService {
	return &VendorService{users: users, stats: stats, publisher: pub}
}

// List returns sellers, optionally filtered by state, with their stats.
func (s *VendorService) List(ctx context.Context, p *auth.Principal, status *domain.VendorStatus) ([]domain.VendorDetail, error) {
	if err := auth.Authorize(p, auth.ActionListVendors, nil).Err(); err != nil {
		return nil, err
	}
	sellers, err := s.users.ListSellers(ctx, status)
	if err != nil {
		return nil, domain.Storage(err)
	}

	ids := make([]uuid.UUID, 0, len(sellers))
	for _, v := range sellers {
		ids = append(ids, v.ID)
	}
	stats, err := s.stats.vendorStats(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.VendorDetail, 0, len(sellers))
	for i := range sellers {
		out = append(out, domain.NewVendorDetail(&sellers[i], stats[sellers[i].ID]))
	}
	return out, nil
}

func (s *VendorService) Get(ctx context.Context, p *auth.Principal, id uuid.UUID) (*domain.VendorDetail, error) {
	if err := auth.Authorize(p, auth.ActionListVendors, nil).Err(); err != nil {
		return nil, err
	}
	v, err := s.findSeller(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.vendorStats(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	d := domain.NewVendorDetail(v, stats[id])
	return &d, nil
}

func (s *VendorService) Approve(ctx context.Context, p *auth.Principal, id uuid.UUID) (*domain.UserSummary, error) {
	return s.decide(ctx, p, auth.ActionApproveVendor, id, domain.VendorApproved)
}

func (s *VendorService) Reject(ctx context.Context, p *auth.Principal, id uuid.UUID) (*domain.UserSummary, error) {
	return s.decide(ctx, p, auth.ActionRejectVendor, id, domain.VendorRejected)
}

// decide applies an admin decision with a compare-and-swap on the current
// state. Repeating the same decision is a no-op; reversing a decision is
// refused.
func (s *VendorService) decide(ctx context.Context, p *auth.Principal, action auth.Action, id uuid.UUID, target domain.VendorStatus) (*domain.UserSummary, error) {
	if err := auth.Authorize(p, action, nil).Err(); err != nil {
		return nil, err
	}
	v, err := s.findSeller(ctx, id)
	if err != nil {
		return nil, err
	}

	current := v.VendorStatus
	if current == target {
		sum := v.Summary()
		return &sum, nil
	}
	if !current.CanTransitionTo(target) {
		return nil, domain.ErrInvalidTransition.WithMessage("vendor is already %s", current)
	}

	changed, err := s.users.TransitionVendor(ctx, id, current, target)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if !changed {
		// Lost a race with another decision; report what won.
		v, err = s.findSeller(ctx, id)
		if err != nil {
			return nil, err
		}
		if v.VendorStatus != target {
			return nil, domain.ErrInvalidTransition.WithMessage("vendor is already %s", v.VendorStatus)
		}
		sum := v.Summary()
		return &sum, nil
	}

	v.VendorStatus = target
	log.WithFields(log.Fields{"vendor_id": id, "status": target, "admin_id": p.ID}).Info("vendor decision recorded")

	pattern := domain.EventVendorApproved
	if target == domain.VendorRejected {
		pattern = domain.EventVendorRejected
	}
	publish(ctx, s.publisher, pattern, domain.VendorDecidedEvent{
		VendorID:  id,
		Status:    target.String(),
		DecidedBy: p.ID,
		DecidedAt: time.Now(),
	})

	sum := v.Summary()
	return &sum, nil
}

func (s *VendorService) findSeller(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	v, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if v == nil || !v.IsSeller() {
		return nil, domain.ErrVendorNotFound
	}
	return v, nil
}
