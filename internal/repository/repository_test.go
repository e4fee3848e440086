package repository_test

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_users.up.sql",
			"../migrations/02_products.up.sql",
			"../migrations/03_carts.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

// postgresSuite owns one container per suite, tables are truncated between tests.
type postgresSuite struct {
	suite.Suite

	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
}

// before all tests in the suite
func (suite *postgresSuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)
}

// after all tests in the suite
func (suite *postgresSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *postgresSuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE cart_items, carts, users, products CASCADE")
	suite.NoError(err)
}

// currency.Unit has unexported fields, compare by ISO code
var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

var cartOpts = cmp.Options{
	cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
	cmpopts.EquateEmpty(),
	currencyComparer,
}

func randomProduct() domain.Product {
	return domain.Product{
		ID:       uuid.MustParse(gofakeit.UUID()),
		Name:     gofakeit.ProductName(),
		Category: gofakeit.ProductCategory(),
		Cost:     randomMoney(),
		Rating:   gofakeit.IntRange(0, 5),
		Image:    gofakeit.URL(),
	}
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		Product:  randomProduct().Snapshot(),
		Quantity: gofakeit.IntRange(1, 10),
	}
}

func randomUser() domain.User {
	return domain.User{
		ID:           uuid.MustParse(gofakeit.UUID()),
		Name:         gofakeit.Name(),
		Email:        domain.NormalizeEmail(gofakeit.Email()),
		PasswordHash: gofakeit.Password(true, true, true, false, false, 60),
		WalletMoney:  randomMoney(),
		Address:      gofakeit.Street(),
	}
}

// two decimal places to match NUMERIC(12, 2)
func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}
