package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
)

type cartRepository struct {
	access accessor
}

func (r *cartRepository) GetCart(_ context.Context, email string) (domain.Cart, error) {
	if email == "" {
		return domain.Cart{}, fmt.Errorf("email is empty")
	}

	var cart domain.Cart
	err := r.access(func(st *state) error {
		stored, ok := st.carts[email]
		if !ok {
			return fmt.Errorf("cart[%s]: %w", email, port.ErrNotFound)
		}
		cart = stored.Clone()
		return nil
	})
	return cart, err
}

// GetCartForUpdate is GetCart, transactions already hold the store lock.
func (r *cartRepository) GetCartForUpdate(ctx context.Context, email string) (domain.Cart, error) {
	return r.GetCart(ctx, email)
}

func (r *cartRepository) CreateCart(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	if cart.Email == "" {
		return domain.Cart{}, fmt.Errorf("email is empty")
	}

	stored := stamp(cart)
	err := r.access(func(st *state) error {
		if _, ok := st.carts[cart.Email]; ok {
			return fmt.Errorf("cart[%s]: %w", cart.Email, port.ErrAlreadyExists)
		}
		st.carts[cart.Email] = stored
		return nil
	})
	if err != nil {
		return domain.Cart{}, err
	}

	return stored.Clone(), nil
}

func (r *cartRepository) SaveCart(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	if cart.Email == "" {
		return domain.Cart{}, fmt.Errorf("email is empty")
	}

	stored := stamp(cart)
	err := r.access(func(st *state) error {
		if _, ok := st.carts[cart.Email]; !ok {
			return fmt.Errorf("cart[%s]: %w", cart.Email, port.ErrNotFound)
		}
		st.carts[cart.Email] = stored
		return nil
	})
	if err != nil {
		return domain.Cart{}, err
	}

	return stored.Clone(), nil
}

// stamp copies the cart and fills CreatedAt of new items like the database default.
func stamp(cart domain.Cart) domain.Cart {
	stored := cart.Clone()
	now := time.Now().UTC()

	for i := range stored.Items {
		if stored.Items[i].CreatedAt.IsZero() {
			stored.Items[i].CreatedAt = now
		}
	}

	return stored
}
