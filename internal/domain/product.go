package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryChemicals            Category = "chemicals"
	CategoryConstruction         Category = "construction_real_estate"
	CategoryVehicles             Category = "vehicles_accessories"
	CategoryAgriculture          Category = "agriculture"
	CategoryLighting             Category = "lighting"
	CategoryAppliances           Category = "appliances"
	CategoryApparel              Category = "apparel"
	CategoryCommercialEquipment  Category = "commercial_equipment"
	CategoryRubberPlastic        Category = "rubber_plastic_foam"
	CategoryHomeGarden           Category = "home_garden"
	CategoryMetalsMining         Category = "metals_mining"
	CategoryCommercialServiceEqp Category = "commercial_service_equipment"
)

var categories = map[Category]struct{}{
	CategoryChemicals:            {},
	CategoryConstruction:         {},
	CategoryVehicles:             {},
	CategoryAgriculture:          {},
	CategoryLighting:             {},
	CategoryAppliances:           {},
	CategoryApparel:              {},
	CategoryCommercialEquipment:  {},
	CategoryRubberPlastic:        {},
	CategoryHomeGarden:           {},
	CategoryMetalsMining:         {},
	CategoryCommercialServiceEqp: {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

const DefaultProductImage = "/placeholder-product.png"

var DefaultShippingCost = decimal.NewFromInt(50)

type Product struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	SellerID       uuid.UUID       `json:"sellerId" gorm:"type:char(36);not null;index"`
	FactoryID      *uuid.UUID      `json:"factoryId,omitempty" gorm:"type:char(36);index"`
	Name           string          `json:"name" gorm:"size:200;not null;index"`
	Description    string          `json:"description" gorm:"type:text;not null"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Category       Category        `json:"category" gorm:"type:varchar(64);not null;index"`
	Image          string          `json:"image" gorm:"size:255"`
	Stock          int64           `json:"stock" gorm:"not null;default:0"`
	Supplier       string          `json:"supplier" gorm:"size:200;not null"`
	IsActive       bool            `json:"isActive" gorm:"not null;index"`
	Brand          string          `json:"brand,omitempty" gorm:"size:200"`
	Color          string          `json:"color" gorm:"size:64;not null"`
	Size           string          `json:"size" gorm:"size:64;not null"`
	Feature1       string          `json:"feature1,omitempty" gorm:"size:255"`
	Feature2       string          `json:"feature2,omitempty" gorm:"size:255"`
	Feature3       string          `json:"feature3,omitempty" gorm:"size:255"`
	ShippingMethod ShippingMethod  `json:"shippingMethod" gorm:"type:varchar(16);default:'standard'"`
	ShippingCost   decimal.Decimal `json:"shippingCost" gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProductInput is the seller-supplied payload for create and update. Nil
// fields are absent; on create the required ones must be set.
type ProductInput struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	Category       *Category
	Image          *string
	Stock          *int64
	Supplier       *string
	IsActive       *bool
	Brand          *string
	Color          *string
	Size           *string
	Feature1       *string
	Feature2       *string
	Feature3       *string
	ShippingMethod *ShippingMethod
	ShippingCost   *decimal.Decimal
}

// Validate checks the fields that are present. With create set it also
// requires every mandatory field.
func (in ProductInput) Validate(create bool) error {
	if create {
		if isBlank(in.Name) || isBlank(in.Description) || in.Price == nil || in.Category == nil ||
			in.Stock == nil || isBlank(in.Supplier) || isBlank(in.Color) || isBlank(in.Size) {
			return ErrMissingFields.WithMessage("name, description, price, category, stock, supplier, color and size are required")
		}
	}
	for _, f := range []*string{in.Name, in.Description, in.Supplier, in.Color, in.Size} {
		if f != nil && isBlank(f) {
			return ErrInvalidInput.WithMessage("name, description, supplier, color and size cannot be empty")
		}
	}
	if in.Price != nil && in.Price.IsNegative() {
		return ErrInvalidInput.WithMessage("price cannot be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return ErrInvalidInput.WithMessage("stock cannot be negative")
	}
	if in.Category != nil && !in.Category.Valid() {
		return ErrInvalidInput.WithMessage("unknown category %q", *in.Category)
	}
	if in.ShippingMethod != nil && !in.ShippingMethod.Valid() {
		return ErrInvalidInput.WithMessage("unknown shipping method %q", *in.ShippingMethod)
	}
	if in.ShippingCost != nil && in.ShippingCost.IsNegative() {
		return ErrInvalidInput.WithMessage("shipping cost cannot be negative")
	}
	return nil
}

// NewProduct builds a product owned by sellerID from a validated create
// input, applying defaults.
func NewProduct(sellerID uuid.UUID, in ProductInput) *Product {
	p := &Product{
		SellerID:       sellerID,
		IsActive:       true,
		Image:          DefaultProductImage,
		ShippingMethod: ShippingStandard,
		ShippingCost:   DefaultShippingCost,
	}
	p.Apply(in)
	return p
}

// Apply copies the present fields of in onto p. Ownership is never touched.
func (p *Product) Apply(in ProductInput) {
	setString(&p.Name, in.Name)
	setString(&p.Description, in.Description)
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	setString(&p.Image, in.Image)
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	setString(&p.Supplier, in.Supplier)
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	setString(&p.Brand, in.Brand)
	setString(&p.Color, in.Color)
	setString(&p.Size, in.Size)
	setString(&p.Feature1, in.Feature1)
	setString(&p.Feature2, in.Feature2)
	setString(&p.Feature3, in.Feature3)
	if in.ShippingMethod != nil {
		p.ShippingMethod = *in.ShippingMethod
	}
	if in.ShippingCost != nil {
		p.ShippingCost = *in.ShippingCost
	}
}

// ProductFilter narrows the public search. Only active products are ever
// returned.
type ProductFilter struct {
	Query    string
	Category Category
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}
