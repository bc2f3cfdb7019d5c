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

type OrderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	publisher rabbit.PublisherInterface
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		publisher: pub,
	}
}

// CreateOrder snapshots name and price of every requested product and
// stores the order. The total is computed here; a client-supplied total has
// to agree with it.
func (u *OrderService) CreateOrder(ctx context.Context, p *auth.Principal, req domain.NewOrderRequest) (*domain.Order, error) {
	if err := auth.Authorize(p, auth.ActionCreateOrder, nil).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(req.Lines))
	for _, l := range req.Lines {
		ids = append(ids, l.ProductID)
	}
	found, err := u.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, domain.Storage(err)
	}
	catalog := make(map[uuid.UUID]domain.Product, len(found))
	for _, prod := range found {
		catalog[prod.ID] = prod
	}

	items, total, err := domain.SnapshotItems(req.Lines, catalog)
	if err != nil {
		return nil, err
	}
	if !total.IsPositive() {
		return nil, domain.ErrMissingFields.WithMessage("order total must be positive")
	}
	if req.TotalAmount != nil && !req.TotalAmount.Equal(total) {
		return nil, domain.ErrTotalMismatch.WithMessage("total amount %s does not match items total %s", req.TotalAmount, total)
	}

	method := req.PaymentMethod
	if method == "" {
		method = domain.PaymentCash
	}
	order := &domain.Order{
		CustomerID:      p.ID,
		Items:           items,
		TotalAmount:     total,
		Status:          domain.StatusPending,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
		PaymentMethod:   method,
		CreatedAt:       time.Now(),
	}

	if err := u.orders.Save(ctx, order); err != nil {
		return nil, domain.Storage(err)
	}

	log.WithFields(log.Fields{"order_id": order.ID, "customer_id": p.ID, "total": total.String()}).Info("order created")
	publish(ctx, u.publisher, domain.EventOrderCreated, domain.OrderCreatedEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		ProductIDs:  ids,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	})
	return order, nil
}

// ListMine returns the caller's orders, newest first.
func (u *OrderService) ListMine(ctx context.Context, p *auth.Principal) ([]domain.Order, error) {
	if err := auth.Authorize(p, auth.ActionViewOrders, nil).Err(); err != nil {
		return nil, err
	}
	out, err := u.orders.ListByCustomer(ctx, p.ID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	return out, nil
}

// GetMine returns one of the caller's orders. Orders of other customers are
// reported as missing.
func (u *OrderService) GetMine(ctx context.Context, p *auth.Principal, id uuid.UUID) (*domain.Order, error) {
	if err := auth.Authorize(p, auth.ActionViewOrders, nil).Err(); err != nil {
		return nil, err
	}
	o, err := u.orders.FindForCustomer(ctx, p.ID, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}
