package http

import (
	"marketplace/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Phone    string      `json:"phone"`
	Address  string      `json:"address"`
	City     string      `json:"city"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=customer seller admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

type RegisterAdminRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	SecretCode string `json:"secretCode" binding:"required"`
}

type PromoteRequest struct {
	Email      string `json:"email" binding:"required,email"`
	SecretCode string `json:"secretCode" binding:"required"`
}

// ProfileRequest mirrors domain.ProfileUpdate field for field.
type ProfileRequest struct {
	Name           *string                `json:"name"`
	Email          *string                `json:"email" binding:"omitempty,email"`
	Phone          *string                `json:"phone"`
	Address        *string                `json:"address"`
	City           *string                `json:"city"`
	Logo           *string                `json:"logo"`
	ShippingMethod *domain.ShippingMethod `json:"shippingMethod"`
}

type ShippingMethodRequest struct {
	ShippingMethod domain.ShippingMethod `json:"shippingMethod" binding:"required"`
}

type BrandRequest struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// ProductRequest mirrors domain.ProductInput field for field.
type ProductRequest struct {
	Name           *string                `json:"name"`
	Description    *string                `json:"description"`
	Price          *decimal.Decimal       `json:"price"`
	Category       *domain.Category       `json:"category"`
	Image          *string                `json:"image"`
	Stock          *int64                 `json:"stock"`
	Supplier       *string                `json:"supplier"`
	IsActive       *bool                  `json:"isActive"`
	Brand          *string                `json:"brand"`
	Color          *string                `json:"color"`
	Size           *string                `json:"size"`
	Feature1       *string                `json:"feature1"`
	Feature2       *string                `json:"feature2"`
	Feature3       *string                `json:"feature3"`
	ShippingMethod *domain.ShippingMethod `json:"shippingMethod"`
	ShippingCost   *decimal.Decimal       `json:"shippingCost"`
}

// FactoryRequest mirrors domain.FactoryInput field for field.
type FactoryRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Image        *string `json:"image"`
	Category     *string `json:"category"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
}

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Products        []OrderLineRequest   `json:"products" binding:"required,min=1,dive"`
	TotalAmount     *decimal.Decimal     `json:"totalAmount"`
	ShippingAddress string               `json:"shippingAddress" binding:"required"`
	Phone           string               `json:"phone" binding:"required"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
}

func (r CreateOrderRequest) toDomain() domain.NewOrderRequest {
	lines := make([]domain.OrderLine, 0, len(r.Products))
	for _, l := range r.Products {
		lines = append(lines, domain.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return domain.NewOrderRequest{
		Lines:           lines,
		TotalAmount:     r.TotalAmount,
		ShippingAddress: r.ShippingAddress,
		Phone:           r.Phone,
		PaymentMethod:   r.PaymentMethod,
	}
}

// SettingsRequest mirrors domain.SettingsUpdate field for field.
type SettingsRequest struct {
	PlatformName *string `json:"platformName"`
	PlatformLogo *string `json:"platformLogo"`
}
