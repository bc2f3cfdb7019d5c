package services

import (
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type fakeTokens struct{}

func (fakeTokens) Issue(id uuid.UUID) (string, error) {
	return "token-" + id.String(), nil
}

var testHasher = auth.NewHasher(bcrypt.MinCost)

func mustHash(pw string) string {
	h, err := testHasher.Hash(pw)
	if err != nil {
		panic(err)
	}
	return h
}

func CreateMockUser(role domain.Role, vs domain.VendorStatus) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Name:         "Test " + string(role),
		Email:        string(role) + "@example.com",
		PasswordHash: mustHash(TestPassword),
		Role:         role,
		VendorStatus: vs,
		CreatedAt:    time.Now(),
	}
}

func CreateMockProduct(sellerID uuid.UUID, name string, price int64) *domain.Product {
	return &domain.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Stock:    10,
		Supplier: TestSupplier,
		IsActive: true,
	}
}

func principalOf(u *domain.User) *auth.Principal {
	return auth.PrincipalOf(u)
}

func strPtr(s string) *string { return &s }

const (
	TestPassword = "s3cret!"
	TestSupplier = "Suez Plant"
	TestSecret   = "letmein"
)
