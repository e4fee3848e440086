package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    domain.ErrorKind
		wantMessage string
	}{
		{
			name:        "not found",
			err:         domain.NotFound("user does not have a cart"),
			wantKind:    domain.KindNotFound,
			wantMessage: "user does not have a cart",
		},
		{
			name:        "wrapped invalid input",
			err:         fmt.Errorf("cartService.AddProduct: %w", domain.InvalidInput("product doesn't exist")),
			wantKind:    domain.KindInvalidInput,
			wantMessage: "product doesn't exist",
		},
		{
			name:        "conflict",
			err:         domain.Conflict("product already in cart"),
			wantKind:    domain.KindConflict,
			wantMessage: "product already in cart",
		},
		{
			name:        "plain error: internal",
			err:         errors.New("boom"),
			wantKind:    domain.KindInternal,
			wantMessage: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, domain.KindOf(tt.err))
			assert.Equal(t, tt.wantMessage, domain.MessageOf(tt.err))
		})
	}
}

func TestInternal_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")

	err := domain.Internal("failed to save cart", cause)

	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "failed to save cart: connection reset")
	assert.Equal(t, "failed to save cart", domain.MessageOf(err))
}
