package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/db"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, email string) (domain.Cart, error) {
	if email == "" {
		return domain.Cart{}, fmt.Errorf("email is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Cart, error) {
		row, err := q.GetCart(ctx, email)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("q.GetCart: %w", mapError(err))
		}

		return getCartItems(ctx, q, row.Email, row.PaymentOption)
	})
}

func (r *cartRepository) GetCartForUpdate(ctx context.Context, email string) (domain.Cart, error) {
	if email == "" {
		return domain.Cart{}, fmt.Errorf("email is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Cart, error) {
		row, err := q.GetCartForUpdate(ctx, email)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("q.GetCartForUpdate: %w", mapError(err))
		}

		return getCartItems(ctx, q, row.Email, row.PaymentOption)
	})
}

func (r *cartRepository) CreateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	if cart.Email == "" {
		return domain.Cart{}, fmt.Errorf("email is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Cart, error) {
		row, err := q.CreateCart(ctx, db.CreateCartParams{
			Email:         cart.Email,
			PaymentOption: cart.PaymentOption,
		})
		if err != nil {
			return domain.Cart{}, fmt.Errorf("q.CreateCart: %w", mapError(err))
		}

		if err := insertCartItems(ctx, q, row.Email, cart.Items); err != nil {
			return domain.Cart{}, fmt.Errorf("insertCartItems: %w", err)
		}

		return getCartItems(ctx, q, row.Email, row.PaymentOption)
	})
}

func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	if cart.Email == "" {
		return domain.Cart{}, fmt.Errorf("email is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Cart, error) {
		rowsAffected, err := q.UpdateCart(ctx, db.UpdateCartParams{
			Email:         cart.Email,
			PaymentOption: cart.PaymentOption,
		})
		if err != nil {
			return domain.Cart{}, fmt.Errorf("q.UpdateCart: %w", err)
		}
		if rowsAffected == 0 {
			return domain.Cart{}, fmt.Errorf("q.UpdateCart: %w", port.ErrNotFound)
		}

		if err := q.DeleteCartItems(ctx, cart.Email); err != nil {
			return domain.Cart{}, fmt.Errorf("q.DeleteCartItems: %w", err)
		}

		if err := insertCartItems(ctx, q, cart.Email, cart.Items); err != nil {
			return domain.Cart{}, fmt.Errorf("insertCartItems: %w", err)
		}

		return getCartItems(ctx, q, cart.Email, cart.PaymentOption)
	})
}

func getCartItems(ctx context.Context, q *db.Queries, email, paymentOption string) (domain.Cart, error) {
	rows, err := q.ListCartItems(ctx, email)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.ListCartItems: %w", err)
	}

	items, err := mapCartItemRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapCartItemRowsToDomain: %w", err)
	}

	return domain.Cart{
		Email:         email,
		Items:         items,
		PaymentOption: paymentOption,
	}, nil
}

func insertCartItems(ctx context.Context, q *db.Queries, email string, items []domain.CartItem) error {
	now := time.Now().UTC()

	for i, item := range items {
		if item.Quantity < 1 || item.Quantity > math.MaxInt32 {
			return fmt.Errorf("quantity[%d] of product[%s] is out of range", item.Quantity, item.Product.ID)
		}

		createdAt := item.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		err := q.InsertCartItem(ctx, db.InsertCartItemParams{
			CartEmail:           email,
			Position:            int32(i),
			ProductID:           item.Product.ID,
			ProductName:         item.Product.Name,
			ProductCategory:     item.Product.Category,
			ProductCostAmount:   item.Product.Cost.Amount,
			ProductCostCurrency: item.Product.Cost.Currency.String(),
			ProductRating:       int32(item.Product.Rating),
			ProductImage:        item.Product.Image,
			Quantity:            int32(item.Quantity),
			CreatedAt:           createdAt,
		})
		if err != nil {
			return fmt.Errorf("q.InsertCartItem[%s]: %w", item.Product.ID, mapError(err))
		}
	}

	return nil
}

func mapCartItemRowToDomain(row db.ListCartItemsRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.ProductCostCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.ProductCostCurrency, err)
	}

	return domain.CartItem{
		Product: domain.ProductSnapshot{
			ID:       row.ProductID,
			Name:     row.ProductName,
			Category: row.ProductCategory,
			Cost:     domain.Money{Amount: row.ProductCostAmount, Currency: parsedCurrency},
			Rating:   int(row.ProductRating),
			Image:    row.ProductImage,
		},
		Quantity:  int(row.Quantity),
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapCartItemRowsToDomain(rows []db.ListCartItemsRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapCartItemRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCartItemRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
