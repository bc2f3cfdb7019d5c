package services

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/infra/cache"
	"marketplace/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	me := CreateMockUser(domain.RoleCustomer, 0)
	other := CreateMockUser(domain.RoleSeller, domain.VendorApproved)

	tests := []struct {
		name          string
		update        domain.ProfileUpdate
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:   "city change",
			update: domain.ProfileUpdate{City: strPtr("Alexandria")},
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("UpdateProfile", mock.Anything, me.ID, domain.ProfileUpdate{City: strPtr("Alexandria")}).Return(nil)
				users.On("FindByID", mock.Anything, me.ID).Return(me, nil)
			},
		},
		{
			name:   "email owned by someone else",
			update: domain.ProfileUpdate{Email: strPtr("SELLER@example.com")},
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "seller@example.com").Return(other, nil)
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name:          "blank name",
			update:        domain.ProfileUpdate{Name: strPtr(" ")},
			setupMocks:    func(*mocks.MockUserRepository) {},
			expectedError: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			tt.setupMocks(users)

			prof, err := NewProfileService(users).UpdateProfile(context.Background(), principalOf(me), tt.update)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, prof)
			} else {
				require.NoError(t, err)
				assert.Equal(t, me.ID, prof.ID)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestProfileService_ShippingMethod(t *testing.T) {
	me := CreateMockUser(domain.RoleCustomer, 0)
	users := new(mocks.MockUserRepository)
	svc := NewProfileService(users)

	_, err := svc.UpdateShippingMethod(context.Background(), principalOf(me), "teleport")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	express := domain.ShippingExpress
	users.On("UpdateProfile", mock.Anything, me.ID, domain.ProfileUpdate{ShippingMethod: &express}).Return(nil).Run(func(mock.Arguments) {
		me.ShippingMethod = express
	})
	users.On("FindByID", mock.Anything, me.ID).Return(me, nil)

	got, err := svc.UpdateShippingMethod(context.Background(), principalOf(me), express)
	require.NoError(t, err)
	assert.Equal(t, domain.ShippingExpress, got)
}

func TestProfileService_Brands(t *testing.T) {
	seller := CreateMockUser(domain.RoleSeller, domain.VendorPending)
	users := new(mocks.MockUserRepository)
	c := new(mocks.MockCache)
	svc := NewProfileService(users)
	svc.SetCache(c, time.Minute)

	users.On("FindByID", mock.Anything, seller.ID).Return(seller, nil)
	users.On("UpdateProfile", mock.Anything, seller.ID, domain.ProfileUpdate{Name: strPtr("Acme")}).Return(nil).Run(func(mock.Arguments) {
		seller.Name = "Acme"
	})
	c.On("Delete", mock.Anything, []string{cache.KeyBrands}).Return(nil)

	b, err := svc.UpdateMyBrand(context.Background(), principalOf(seller), " Acme ", "")
	require.NoError(t, err)
	assert.Equal(t, "Acme", b.Name)
	c.AssertExpectations(t)

	_, err = svc.MyBrand(context.Background(), principalOf(CreateMockUser(domain.RoleCustomer, 0)))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProfileService_Notifications(t *testing.T) {
	svc := NewProfileService(new(mocks.MockUserRepository))

	items, err := svc.Notifications(context.Background(), principalOf(CreateMockUser(domain.RoleCustomer, 0)))
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = svc.Notifications(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
