package services

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/domain"
	"marketplace/internal/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func order(total int64, status domain.OrderStatus) domain.Order {
	return domain.Order{ID: uuid.New(), CustomerID: uuid.New(), TotalAmount: decimal.NewFromInt(total), Status: status}
}

func TestStatsService_Platform(t *testing.T) {
	admin := principalOf(CreateMockUser(domain.RoleAdmin, 0))

	tests := []struct {
		name            string
		setupMocks      func(*mocks.MockUserRepository, *mocks.MockProductRepository, *mocks.MockOrderRepository)
		expectedError   error
		expectedRevenue decimal.Decimal
	}{
		{
			name: "cancelled orders are not revenue",
			setupMocks: func(users *mocks.MockUserRepository, products *mocks.MockProductRepository, orders *mocks.MockOrderRepository) {
				users.On("Count", mock.Anything).Return(int64(4), nil)
				products.On("Count", mock.Anything).Return(int64(7), nil)
				orders.On("Count", mock.Anything).Return(int64(3), nil)
				orders.On("EachBatch", mock.Anything, defaultScanBatch, mock.Anything).Return([]domain.Order{
					order(10, domain.StatusDelivered),
					order(20, domain.StatusDelivered),
					order(5, domain.StatusCancelled),
				}, nil)
			},
			expectedRevenue: decimal.NewFromInt(30),
		},
		{
			name: "empty ledger",
			setupMocks: func(users *mocks.MockUserRepository, products *mocks.MockProductRepository, orders *mocks.MockOrderRepository) {
				users.On("Count", mock.Anything).Return(int64(0), nil)
				products.On("Count", mock.Anything).Return(int64(0), nil)
				orders.On("Count", mock.Anything).Return(int64(0), nil)
				orders.On("EachBatch", mock.Anything, defaultScanBatch, mock.Anything).Return(nil, nil)
			},
			expectedRevenue: decimal.Zero,
		},
		{
			name: "count failure",
			setupMocks: func(users *mocks.MockUserRepository, products *mocks.MockProductRepository, orders *mocks.MockOrderRepository) {
				users.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))
				products.On("Count", mock.Anything).Return(int64(0), nil).Maybe()
				orders.On("Count", mock.Anything).Return(int64(0), nil).Maybe()
				orders.On("EachBatch", mock.Anything, defaultScanBatch, mock.Anything).Return(nil, nil).Maybe()
			},
			expectedError: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			products := new(mocks.MockProductRepository)
			orders := new(mocks.MockOrderRepository)
			tt.setupMocks(users, products, orders)

			stats, err := NewStatsService(users, products, orders).Platform(context.Background(), admin)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, stats)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expectedRevenue.Equal(stats.Revenue), "revenue %s", stats.Revenue)
			users.AssertExpectations(t)
			orders.AssertExpectations(t)
		})
	}
}

func TestStatsService_PlatformRequiresAdmin(t *testing.T) {
	svc := NewStatsService(new(mocks.MockUserRepository), new(mocks.MockProductRepository), new(mocks.MockOrderRepository))

	_, err := svc.Platform(context.Background(), principalOf(CreateMockUser(domain.RoleCustomer, 0)))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Platform(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestStatsService_Vendor(t *testing.T) {
	seller := CreateMockUser(domain.RoleSeller, domain.VendorApproved)
	other := CreateMockUser(domain.RoleSeller, domain.VendorApproved)
	p1, p2, foreign := uuid.New(), uuid.New(), uuid.New()
	repeat := uuid.New()

	setup := func() (*mocks.MockUserRepository, *mocks.MockProductRepository, *mocks.MockOrderRepository) {
		users := new(mocks.MockUserRepository)
		products := new(mocks.MockProductRepository)
		orders := new(mocks.MockOrderRepository)
		users.On("FindByID", mock.Anything, seller.ID).Return(seller, nil)
		products.On("OwnersOf", mock.Anything, []uuid.UUID{seller.ID}).Return(map[uuid.UUID]uuid.UUID{p1: seller.ID, p2: seller.ID}, nil)
		orders.On("EachBatch", mock.Anything, defaultScanBatch, mock.Anything).Return([]domain.Order{
			{CustomerID: repeat, Items: []domain.OrderItem{{ProductID: p1}, {ProductID: p2}}},
			{CustomerID: repeat, Items: []domain.OrderItem{{ProductID: p2}}},
			{CustomerID: uuid.New(), Items: []domain.OrderItem{{ProductID: p1}}},
			{CustomerID: uuid.New(), Items: []domain.OrderItem{{ProductID: foreign}}},
		}, nil)
		return users, products, orders
	}

	t.Run("seller reads own stats", func(t *testing.T) {
		users, products, orders := setup()
		st, err := NewStatsService(users, products, orders).Vendor(context.Background(), principalOf(seller), seller.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), st.ProductCount)
		assert.Equal(t, 2, st.CustomerCount)
	})

	t.Run("admin reads any seller", func(t *testing.T) {
		users, products, orders := setup()
		admin := principalOf(CreateMockUser(domain.RoleAdmin, 0))
		st, err := NewStatsService(users, products, orders).Vendor(context.Background(), admin, seller.ID)
		require.NoError(t, err)
		assert.Equal(t, seller.ID, st.VendorID)
	})

	t.Run("other seller is refused", func(t *testing.T) {
		users, products, orders := setup()
		_, err := NewStatsService(users, products, orders).Vendor(context.Background(), principalOf(other), seller.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("customer id is not a vendor", func(t *testing.T) {
		customer := CreateMockUser(domain.RoleCustomer, 0)
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		admin := principalOf(CreateMockUser(domain.RoleAdmin, 0))

		_, err := NewStatsService(users, new(mocks.MockProductRepository), new(mocks.MockOrderRepository)).Vendor(context.Background(), admin, customer.ID)
		assert.ErrorIs(t, err, domain.ErrVendorNotFound)
	})
}
