package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCheckoutService_Checkout(t *testing.T) {
	tests := []struct {
		name        string
		wallet      string
		address     string
		cost        string
		quantity    int
		wantKind    domain.ErrorKind
		wantMessage string
		wantWallet  string
	}{
		{
			name:       "address set and enough balance: ok",
			wallet:     "500",
			address:    realAddress,
			cost:       "100",
			quantity:   2,
			wantWallet: "300",
		},
		{
			name:       "total equals balance: ok",
			wallet:     "500",
			address:    realAddress,
			cost:       "250",
			quantity:   2,
			wantWallet: "0",
		},
		{
			name:        "address not set: invalid input",
			wallet:      "500",
			address:     testDefaults.Address,
			cost:        "100",
			quantity:    2,
			wantKind:    domain.KindInvalidInput,
			wantMessage: "address is not set",
			wantWallet:  "500",
		},
		{
			name:        "total exceeds balance: invalid input",
			wallet:      "500",
			address:     realAddress,
			cost:        "1000",
			quantity:    1,
			wantKind:    domain.KindInvalidInput,
			wantMessage: "insufficient balance",
			wantWallet:  "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := t.Context()
			user := f.seedUser(t, tt.wallet, tt.address)
			product := f.seedProduct(t, tt.cost)

			_, err := f.carts.AddProduct(ctx, user.Email, product.ID, tt.quantity)
			require.NoError(t, err)
			before := f.cart(t, user.Email)

			err = f.checkout.Checkout(ctx, user.Email)
			requireAmount(t, tt.wantWallet, f.user(t, user.Email).WalletMoney)

			if tt.wantMessage != "" {
				requireKind(t, err, tt.wantKind, tt.wantMessage)
				assert.Empty(t, cmp.Diff(before, f.cart(t, user.Email), currencyComparer))
				return
			}
			require.NoError(t, err)

			cart := f.cart(t, user.Email)
			assert.Empty(t, cart.Items)
			assert.Equal(t, before.PaymentOption, cart.PaymentOption)
		})
	}
}

func TestCheckoutService_Checkout_WithoutCart(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "500", realAddress)

	err := f.checkout.Checkout(t.Context(), user.Email)
	requireKind(t, err, domain.KindNotFound, "user does not have a cart")
}

func TestCheckoutService_Checkout_UnknownUser(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	user := f.seedUser(t, "500", realAddress)
	product := f.seedProduct(t, "10")

	_, err := f.carts.AddProduct(ctx, user.Email, product.ID, 1)
	require.NoError(t, err)

	// a cart whose owner is not in the account store
	_, err = f.repos.Carts.CreateCart(ctx, domain.Cart{Email: "ghost@example.com", Items: f.cart(t, user.Email).Items})
	require.NoError(t, err)

	err = f.checkout.Checkout(ctx, "ghost@example.com")
	requireKind(t, err, domain.KindNotFound, "user not found")
}

func TestCheckoutService_Checkout_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	user := f.seedUser(t, "500", realAddress)
	cheap, pricey := f.seedProduct(t, "10"), f.seedProduct(t, "5")

	_, err := f.carts.AddProduct(ctx, user.Email, cheap.ID, 2)
	require.NoError(t, err)
	_, err = f.carts.AddProduct(ctx, user.Email, pricey.ID, 1)
	require.NoError(t, err)

	require.NoError(t, f.checkout.Checkout(ctx, user.Email))
	requireAmount(t, "475", f.user(t, user.Email).WalletMoney)

	err = f.checkout.Checkout(ctx, user.Email)
	requireKind(t, err, domain.KindInvalidInput, "user does not have items in the cart")
	requireAmount(t, "475", f.user(t, user.Email).WalletMoney)
}

// The debit and the cart clear are one unit: a failure on the second write
// must not leave the wallet debited.
func TestCheckoutService_Checkout_CartWriteFails(t *testing.T) {
	f := newFixtureWithTx(t, decorateRepos(func(repos port.Repositories) port.Repositories {
		repos.Carts = failingCartSaves{CartRepository: repos.Carts}
		return repos
	}))
	ctx := t.Context()
	user := f.seedUser(t, "500", realAddress)
	product := f.seedProduct(t, "100")

	// seed the cart directly, cart writes through the services fail in this fixture
	_, err := f.repos.Carts.CreateCart(ctx, domain.Cart{
		Email:         user.Email,
		Items:         []domain.CartItem{{Product: product.Snapshot(), Quantity: 2}},
		PaymentOption: testDefaults.PaymentOption,
	})
	require.NoError(t, err)

	err = f.checkout.Checkout(ctx, user.Email)
	requireKind(t, err, domain.KindInternal, "failed to clear cart")
	assert.ErrorIs(t, err, errCartWrite)

	requireAmount(t, "500", f.user(t, user.Email).WalletMoney)
	assert.Len(t, f.cart(t, user.Email).Items, 1)
}

func TestCheckoutService_Checkout_Concurrent(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "500", realAddress)
	product := f.seedProduct(t, "300")

	_, err := f.carts.AddProduct(t.Context(), user.Email, product.ID, 1)
	require.NoError(t, err)

	const n = 10
	var ok, empty atomic.Int32

	g, ctx := errgroup.WithContext(t.Context())
	for range n {
		g.Go(func() error {
			err := f.checkout.Checkout(ctx, user.Email)
			switch {
			case err == nil:
				ok.Add(1)
			case domain.KindOf(err) == domain.KindInvalidInput:
				empty.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 1, ok.Load())
	assert.EqualValues(t, n-1, empty.Load())
	requireAmount(t, "200", f.user(t, user.Email).WalletMoney)
}

func TestCheckoutService_Checkout_CanceledContext(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "500", realAddress)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := f.checkout.Checkout(ctx, user.Email)
	requireKind(t, err, domain.KindInternal, "")
	assert.True(t, errors.Is(err, context.Canceled))
}

var errCartWrite = errors.New("cart write failed")

type failingCartSaves struct {
	port.CartRepository
}

func (failingCartSaves) SaveCart(context.Context, domain.Cart) (domain.Cart, error) {
	return domain.Cart{}, errCartWrite
}
