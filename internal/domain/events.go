package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventUserRegistered = "user.registered"
	EventVendorApproved = "vendor.approved"
	EventVendorRejected = "vendor.rejected"
	EventOrderCreated   = "order.created"
)

type UserRegisteredEvent struct {
	UserID    uuid.UUID `json:"userId"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type VendorDecidedEvent struct {
	VendorID  uuid.UUID `json:"vendorId"`
	Status    string    `json:"status"`
	DecidedBy uuid.UUID `json:"decidedBy"`
	DecidedAt time.Time `json:"decidedAt"`
}

type OrderCreatedEvent struct {
	OrderID     uuid.UUID       `json:"orderId"`
	CustomerID  uuid.UUID       `json:"customerId"`
	ProductIDs  []uuid.UUID     `json:"productIds"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}
