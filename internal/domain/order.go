package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var orderFlow = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusShipped,
	StatusShipped:   StatusDelivered,
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo follows pending → confirmed → shipped → delivered, with
// cancellation allowed from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return orderFlow[s] == next
}

// CountsTowardRevenue reports whether an order in this state is revenue.
func (s OrderStatus) CountsTowardRevenue() bool {
	return s != StatusCancelled
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBankTransfer:
		return true
	}
	return false
}

type Order struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CustomerID      uuid.UUID       `json:"customerId" gorm:"type:char(36);not null;index"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"type:enum('pending','confirmed','shipped','delivered','cancelled');default:'pending';index"`
	ShippingAddress string          `json:"shippingAddress" gorm:"size:255;not null"`
	Phone           string          `json:"phone" gorm:"size:32;not null"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod" gorm:"type:enum('cash','card','bank_transfer');default:'cash'"`
	CreatedAt       time.Time       `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}

// OrderItem is a copy of the product as it was when the order was placed.
// It does not follow later edits to the product.
type OrderItem struct {
	ID        uuid.UUID       `json:"-" gorm:"type:char(36);primaryKey"`
	OrderID   uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	ProductID uuid.UUID       `json:"productId" gorm:"type:char(36);not null;index"`
	Name      string          `json:"name" gorm:"size:200;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Quantity  int64           `json:"quantity" gorm:"not null;check:quantity > 0"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// OrderLine is one requested line of a new order.
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int64
}

// NewOrderRequest is the customer-supplied order. TotalAmount is optional;
// when present it must agree with the server-side total.
type NewOrderRequest struct {
	Lines           []OrderLine
	TotalAmount     *decimal.Decimal
	ShippingAddress string
	Phone           string
	PaymentMethod   PaymentMethod
}

func (r NewOrderRequest) Validate() error {
	if len(r.Lines) == 0 || strings.TrimSpace(r.ShippingAddress) == "" || strings.TrimSpace(r.Phone) == "" {
		return ErrMissingFields.WithMessage("products, shipping address and phone are required")
	}
	for _, l := range r.Lines {
		if l.ProductID == uuid.Nil {
			return ErrMissingFields.WithMessage("every order line needs a product id")
		}
		if l.Quantity < 1 {
			return ErrInvalidInput.WithMessage("quantity must be at least 1")
		}
	}
	if r.TotalAmount != nil && !r.TotalAmount.IsPositive() {
		return ErrMissingFields.WithMessage("total amount must be positive")
	}
	if r.PaymentMethod != "" && !r.PaymentMethod.Valid() {
		return ErrInvalidInput.WithMessage("unknown payment method %q", r.PaymentMethod)
	}
	return nil
}

// SnapshotItems copies name and price from the current catalog state.
// Every line must reference an active product in catalog.
func SnapshotItems(lines []OrderLine, catalog map[uuid.UUID]Product) ([]OrderItem, decimal.Decimal, error) {
	items := make([]OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		p, ok := catalog[l.ProductID]
		if !ok || !p.IsActive {
			return nil, decimal.Zero, ErrUnknownProduct.WithMessage("product %s is not available", l.ProductID)
		}
		item := OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  l.Quantity,
		}
		total = total.Add(item.LineTotal())
		items = append(items, item)
	}
	return items, total, nil
}

// PlatformStats summarises the whole marketplace.
type PlatformStats struct {
	Users    int64           `json:"users"`
	Products int64           `json:"products"`
	Orders   int64           `json:"orders"`
	Revenue  decimal.Decimal `json:"revenue"`
}
