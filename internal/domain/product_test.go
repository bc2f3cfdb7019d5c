package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func validProductInput() ProductInput {
	price := decimal.NewFromInt(120)
	cat := CategoryConstruction
	stock := int64(10)
	return ProductInput{
		Name:        str("Cement"),
		Description: str("Portland cement"),
		Price:       &price,
		Category:    &cat,
		Stock:       &stock,
		Supplier:    str("Suez Plant"),
		Color:       str("grey"),
		Size:        str("50kg"),
	}
}

func TestProductInput_Validate(t *testing.T) {
	t.Run("create requires mandatory fields", func(t *testing.T) {
		in := validProductInput()
		in.Supplier = str("   ")
		assert.ErrorIs(t, in.Validate(true), ErrMissingFields)
	})

	t.Run("update accepts partial input", func(t *testing.T) {
		assert.NoError(t, ProductInput{Name: str("New name")}.Validate(false))
	})

	t.Run("update cannot blank a required field", func(t *testing.T) {
		for _, in := range []ProductInput{
			{Name: str("")},
			{Description: str("  ")},
			{Supplier: str("")},
			{Color: str("\t")},
			{Size: str("")},
		} {
			assert.ErrorIs(t, in.Validate(false), ErrInvalidInput)
		}
		assert.NoError(t, ProductInput{Brand: str(""), Feature1: str("")}.Validate(false))
	})

	t.Run("negative price", func(t *testing.T) {
		in := validProductInput()
		neg := decimal.NewFromInt(-1)
		in.Price = &neg
		assert.ErrorIs(t, in.Validate(true), ErrInvalidInput)
	})

	t.Run("unknown category", func(t *testing.T) {
		cat := Category("toys")
		assert.ErrorIs(t, ProductInput{Category: &cat}.Validate(false), ErrInvalidInput)
	})

	t.Run("negative shipping cost", func(t *testing.T) {
		neg := decimal.NewFromInt(-5)
		assert.ErrorIs(t, ProductInput{ShippingCost: &neg}.Validate(false), ErrInvalidInput)
	})
}

func TestNewProduct_Defaults(t *testing.T) {
	seller := uuid.New()
	p := NewProduct(seller, validProductInput())

	assert.Equal(t, seller, p.SellerID)
	assert.True(t, p.IsActive)
	assert.Equal(t, DefaultProductImage, p.Image)
	assert.Equal(t, ShippingStandard, p.ShippingMethod)
	assert.True(t, p.ShippingCost.Equal(DefaultShippingCost))
	assert.Equal(t, "Cement", p.Name)
}

func TestProduct_ApplyKeepsOwnerAndAbsentFields(t *testing.T) {
	seller := uuid.New()
	p := NewProduct(seller, validProductInput())

	inactive := false
	p.Apply(ProductInput{Name: str("  White cement "), IsActive: &inactive})

	assert.Equal(t, seller, p.SellerID)
	assert.Equal(t, "White cement", p.Name)
	assert.False(t, p.IsActive)
	assert.Equal(t, "Portland cement", p.Description)
}

func TestFactoryInput_Validate(t *testing.T) {
	assert.ErrorIs(t, FactoryInput{Name: str("Plant")}.Validate(true), ErrMissingFields)
	assert.NoError(t, FactoryInput{Name: str("Plant"), Location: str("Suez")}.Validate(true))
	assert.ErrorIs(t, FactoryInput{Name: str(" ")}.Validate(false), ErrInvalidInput)
	assert.ErrorIs(t, FactoryInput{Location: str("")}.Validate(false), ErrInvalidInput)
	assert.NoError(t, FactoryInput{Image: str("")}.Validate(false))
}
