package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factory is a seller's production site.
type Factory struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SellerID     uuid.UUID `json:"sellerId" gorm:"type:char(36);not null;index;index:idx_factories_seller_name,priority:1"`
	Name         string    `json:"name" gorm:"size:200;not null;index:idx_factories_seller_name,priority:2"`
	Location     string    `json:"location" gorm:"size:255;not null"`
	Image        string    `json:"image" gorm:"size:255"`
	Category     string    `json:"category,omitempty" gorm:"size:100"`
	ContactEmail string    `json:"contactEmail,omitempty" gorm:"size:255"`
	ContactPhone string    `json:"contactPhone,omitempty" gorm:"size:32"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (f *Factory) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type FactoryInput struct {
	Name         *string
	Location     *string
	Image        *string
	Category     *string
	ContactEmail *string
	ContactPhone *string
}

func (in FactoryInput) Validate(create bool) error {
	if create && (isBlank(in.Name) || isBlank(in.Location)) {
		return ErrMissingFields.WithMessage("factory name and location are required")
	}
	if (in.Name != nil && isBlank(in.Name)) || (in.Location != nil && isBlank(in.Location)) {
		return ErrInvalidInput.WithMessage("factory name and location cannot be empty")
	}
	return nil
}

func NewFactory(sellerID uuid.UUID, in FactoryInput) *Factory {
	f := &Factory{SellerID: sellerID}
	f.Apply(in)
	return f
}

func (f *Factory) Apply(in FactoryInput) {
	setString(&f.Name, in.Name)
	setString(&f.Location, in.Location)
	setString(&f.Image, in.Image)
	setString(&f.Category, in.Category)
	setString(&f.ContactEmail, in.ContactEmail)
	setString(&f.ContactPhone, in.ContactPhone)
}
