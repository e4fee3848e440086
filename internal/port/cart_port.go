package port

import (
	"context"

	"github.com/nikolayk812/shopcart/internal/domain"
)

type CartRepository interface {
	// GetCart returns ErrNotFound if the user has no cart.
	GetCart(ctx context.Context, email string) (domain.Cart, error)
	// GetCartForUpdate is GetCart that also locks the cart until the enclosing transaction ends.
	GetCartForUpdate(ctx context.Context, email string) (domain.Cart, error)
	// CreateCart returns ErrAlreadyExists if a cart for the email exists.
	CreateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	// SaveCart replaces the stored items and payment option of an existing cart.
	SaveCart(ctx context.Context, cart domain.Cart) (domain.Cart, error)
}
