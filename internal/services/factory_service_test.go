package services

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/domain"
	"marketplace/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFactoryService_Update(t *testing.T) {
	owner := CreateMockUser(domain.RoleSeller, domain.VendorApproved)
	intruder := CreateMockUser(domain.RoleSeller, domain.VendorApproved)

	tests := []struct {
		name          string
		caller        *domain.User
		input         domain.FactoryInput
		setupMocks    func(*mocks.MockFactoryRepository, *domain.Factory)
		expectedError error
	}{
		{
			name:   "owner renames",
			caller: owner,
			input:  domain.FactoryInput{Name: strPtr("Delta Kiln")},
			setupMocks: func(repo *mocks.MockFactoryRepository, f *domain.Factory) {
				repo.On("FindByID", mock.Anything, f.ID).Return(f, nil)
				repo.On("UpdateOwned", mock.Anything, owner.ID, f).Return(true, nil)
			},
		},
		{
			name:   "other seller is told it does not exist",
			caller: intruder,
			input:  domain.FactoryInput{Name: strPtr("Mine now")},
			setupMocks: func(repo *mocks.MockFactoryRepository, f *domain.Factory) {
				repo.On("FindByID", mock.Anything, f.ID).Return(f, nil)
			},
			expectedError: domain.ErrNotFoundOrNotOwned,
		},
		{
			name:   "blank name",
			caller: owner,
			input:  domain.FactoryInput{Name: strPtr("  ")},
			setupMocks: func(repo *mocks.MockFactoryRepository, f *domain.Factory) {
				repo.On("FindByID", mock.Anything, f.ID).Return(f, nil)
			},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:   "storage failure",
			caller: owner,
			input:  domain.FactoryInput{Location: strPtr("Giza")},
			setupMocks: func(repo *mocks.MockFactoryRepository, f *domain.Factory) {
				repo.On("FindByID", mock.Anything, f.ID).Return(nil, errors.New("db down"))
			},
			expectedError: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockFactoryRepository)
			f := &domain.Factory{ID: uuid.New(), SellerID: owner.ID, Name: "Nile Bricks", Location: "Aswan"}
			tt.setupMocks(repo, f)

			out, err := NewFactoryService(repo).Update(context.Background(), principalOf(tt.caller), f.ID, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, out)
				if tt.caller == intruder {
					assert.Equal(t, "Nile Bricks", f.Name)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Delta Kiln", out.Name)
				assert.Equal(t, "Aswan", out.Location)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestFactoryService_DeleteAndList(t *testing.T) {
	owner := CreateMockUser(domain.RoleSeller, domain.VendorApproved)
	f := &domain.Factory{ID: uuid.New(), SellerID: owner.ID, Name: "Nile Bricks"}

	repo := new(mocks.MockFactoryRepository)
	repo.On("FindByID", mock.Anything, f.ID).Return(f, nil)
	repo.On("DeleteOwned", mock.Anything, owner.ID, f.ID).Return(true, nil)
	repo.On("ListBySeller", mock.Anything, owner.ID).Return([]domain.Factory{*f}, nil)
	repo.On("ListAll", mock.Anything).Return([]domain.Factory{*f}, nil)

	svc := NewFactoryService(repo)
	require.NoError(t, svc.Delete(context.Background(), principalOf(owner), f.ID))

	mine, err := svc.ListMine(context.Background(), principalOf(owner))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.ListMine(context.Background(), principalOf(CreateMockUser(domain.RoleCustomer, 0)))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
