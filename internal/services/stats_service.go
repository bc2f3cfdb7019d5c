package services

import (
	"context"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultScanBatch = 500

// StatsService derives aggregates by scanning the catalog and the order
// ledger on every call. Nothing is precomputed, so cost grows with the
// number of orders.
type StatsService struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	batchSize int
}

func NewStatsService(users repository.UserRepository, products repository.ProductRepository, orders repository.OrderRepository) *StatsService {
	return &StatsService{
		users:     users,
		products:  products,
		orders:    orders,
		batchSize: defaultScanBatch,
	}
}

// Platform counts users, products and orders and sums revenue over orders
// that were not cancelled.
func (s *StatsService) Platform(ctx context.Context, p *auth.Principal) (*domain.PlatformStats, error) {
	if err := auth.Authorize(p, auth.ActionPlatformStats, nil).Err(); err != nil {
		return nil, err
	}

	var stats domain.PlatformStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.users.Count(gctx)
		stats.Users = n
		return err
	})
	g.Go(func() error {
		n, err := s.products.Count(gctx)
		stats.Products = n
		return err
	})
	g.Go(func() error {
		n, err := s.orders.Count(gctx)
		stats.Orders = n
		return err
	})
	g.Go(func() error {
		rev, err := s.revenue(gctx)
		stats.Revenue = rev
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.Storage(err)
	}
	return &stats, nil
}

func (s *StatsService) revenue(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	err := s.orders.EachBatch(ctx, s.batchSize, func(batch []domain.Order) error {
		for _, o := range batch {
			if o.Status.CountsTowardRevenue() {
				total = total.Add(o.TotalAmount)
			}
		}
		return nil
	})
	return total, err
}

// Vendor returns one seller's stats. Admins may read any seller; a seller
// may read only their own.
func (s *StatsService) Vendor(ctx context.Context, p *auth.Principal, vendorID uuid.UUID) (*domain.VendorStats, error) {
	if err := auth.Authorize(p, auth.ActionVendorStats, &auth.Resource{OwnerID: vendorID}).Err(); err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, vendorID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if u == nil || !u.IsSeller() {
		return nil, domain.ErrVendorNotFound
	}
	all, err := s.vendorStats(ctx, []uuid.UUID{vendorID})
	if err != nil {
		return nil, err
	}
	st := all[vendorID]
	return &st, nil
}

// vendorStats computes product and distinct-customer counts for each
// seller in ids with a single pass over the orders.
func (s *StatsService) vendorStats(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.VendorStats, error) {
	out := make(map[uuid.UUID]domain.VendorStats, len(ids))
	for _, id := range ids {
		out[id] = domain.VendorStats{VendorID: id}
	}
	if len(ids) == 0 {
		return out, nil
	}

	owners, err := s.products.OwnersOf(ctx, ids)
	if err != nil {
		return nil, domain.Storage(err)
	}
	for _, seller := range owners {
		st := out[seller]
		st.ProductCount++
		out[seller] = st
	}
	if len(owners) == 0 {
		return out, nil
	}

	customers := make(map[uuid.UUID]map[uuid.UUID]struct{}, len(ids))
	err = s.orders.EachBatch(ctx, s.batchSize, func(batch []domain.Order) error {
		for _, o := range batch {
			for _, item := range o.Items {
				seller, ok := owners[item.ProductID]
				if !ok {
					continue
				}
				set := customers[seller]
				if set == nil {
					set = make(map[uuid.UUID]struct{})
					customers[seller] = set
				}
				set[o.CustomerID] = struct{}{}
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.Storage(err)
	}

	for seller, set := range customers {
		st := out[seller]
		st.CustomerCount = len(set)
		out[seller] = st
	}
	return out, nil
}
