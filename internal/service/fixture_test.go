package service_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/nikolayk812/shopcart/internal/repository/memory"
	"github.com/nikolayk812/shopcart/internal/security"
	"github.com/nikolayk812/shopcart/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/currency"
)

const realAddress = "12 Residency Road, Bengaluru 560025"

// currency.Unit has unexported fields, compare by ISO code
var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

var testDefaults = domain.Defaults{
	WalletMoney:   inr("500"),
	Address:       "ADDRESS_NOT_SET",
	PaymentOption: "PAYMENT_OPTION_DEFAULT",
}

type fixture struct {
	store    *memory.Store
	repos    port.Repositories
	carts    *service.CartService
	checkout *service.CheckoutService
	users    *service.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return newFixtureWithTx(t, nil)
}

// newFixtureWithTx lets a test decorate the transactor used by the services.
func newFixtureWithTx(t *testing.T, wrap func(port.Transactor) port.Transactor) *fixture {
	t.Helper()

	logger, _ := test.NewNullLogger()
	store := memory.NewStore()
	locks := service.NewKeyLock()
	repos := store.Repositories()

	var tx port.Transactor = store
	if wrap != nil {
		tx = wrap(store)
	}

	return &fixture{
		store:    store,
		repos:    repos,
		carts:    service.NewCartService(repos, tx, locks, testDefaults, logger),
		checkout: service.NewCheckoutService(tx, locks, testDefaults, logger),
		users:    service.NewUserService(repos, tx, locks, security.NewBcryptHasher(bcrypt.MinCost), testDefaults, logger),
	}
}

func (f *fixture) seedProduct(t *testing.T, cost string) domain.Product {
	t.Helper()

	product, err := f.repos.Products.CreateProduct(t.Context(), domain.Product{
		ID:       uuid.New(),
		Name:     gofakeit.ProductName(),
		Category: gofakeit.ProductCategory(),
		Cost:     inr(cost),
		Rating:   gofakeit.IntRange(1, 5),
		Image:    gofakeit.URL(),
	})
	require.NoError(t, err)

	return product
}

func (f *fixture) seedUser(t *testing.T, wallet, address string) domain.User {
	t.Helper()

	user, err := f.repos.Users.CreateUser(t.Context(), domain.User{
		ID:          uuid.New(),
		Name:        gofakeit.Name(),
		Email:       domain.NormalizeEmail(gofakeit.Email()),
		WalletMoney: inr(wallet),
		Address:     address,
	})
	require.NoError(t, err)

	return user
}

func (f *fixture) user(t *testing.T, email string) domain.User {
	t.Helper()

	user, err := f.repos.Users.GetUserByEmail(t.Context(), email)
	require.NoError(t, err)

	return user
}

func (f *fixture) cart(t *testing.T, email string) domain.Cart {
	t.Helper()

	cart, err := f.repos.Carts.GetCart(t.Context(), email)
	require.NoError(t, err)

	return cart
}

func requireKind(t *testing.T, err error, kind domain.ErrorKind, message string) {
	t.Helper()

	require.Error(t, err)
	require.Equal(t, kind, domain.KindOf(err), "error: %v", err)
	if message != "" {
		require.Contains(t, domain.MessageOf(err), message)
	}
}

func inr(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.INR}
}

func requireAmount(t *testing.T, want string, got domain.Money) {
	t.Helper()

	require.True(t, decimal.RequireFromString(want).Equal(got.Amount), "want %s, got %s", want, got.Amount)
}

// txFunc adapts a function to port.Transactor.
type txFunc func(ctx context.Context, fn func(repos port.Repositories) error) error

func (f txFunc) WithinTx(ctx context.Context, fn func(repos port.Repositories) error) error {
	return f(ctx, fn)
}

// decorateRepos returns a transactor that lets decorate change the repositories handed to fn.
func decorateRepos(decorate func(repos port.Repositories) port.Repositories) func(port.Transactor) port.Transactor {
	return func(inner port.Transactor) port.Transactor {
		return txFunc(func(ctx context.Context, fn func(repos port.Repositories) error) error {
			return inner.WithinTx(ctx, func(repos port.Repositories) error {
				return fn(decorate(repos))
			})
		})
	}
}
