package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := ErrMissingFields.WithMessage("name is required")

	assert.ErrorIs(t, err, ErrMissingFields)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "name is required", err.Error())
	assert.Equal(t, "required fields are missing", ErrMissingFields.Message, "sentinel must not change")
}

func TestStorage(t *testing.T) {
	assert.Nil(t, Storage(nil))

	raw := errors.New("connection refused")
	wrapped := Storage(raw)
	assert.ErrorIs(t, wrapped, ErrStorage)
	assert.ErrorIs(t, wrapped, raw)
	assert.Equal(t, KindStorage, KindOf(wrapped))

	assert.Same(t, ErrEmailTaken, Storage(ErrEmailTaken))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{ErrMissingFields, KindValidation},
		{ErrTokenExpired, KindAuthentication},
		{ErrVendorPending, KindAuthorization},
		{ErrNotFoundOrNotOwned, KindNotFound},
		{ErrAdminExists, KindConflict},
		{fmt.Errorf("wrapped: %w", ErrEmailTaken), KindConflict},
		{errors.New("untyped"), KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
