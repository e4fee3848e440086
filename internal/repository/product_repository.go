package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/db"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{q: db.New(pool)}
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", mapError(err))
	}

	return mapProductToDomain(row)
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if product.ID == uuid.Nil {
		return domain.Product{}, fmt.Errorf("product ID is empty")
	}

	row, err := r.q.CreateProduct(ctx, db.CreateProductParams{
		ID:           product.ID,
		Name:         product.Name,
		Category:     product.Category,
		CostAmount:   product.Cost.Amount,
		CostCurrency: product.Cost.Currency.String(),
		Rating:       int32(product.Rating),
		Image:        product.Image,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.CreateProduct: %w", mapError(err))
	}

	return mapProductToDomain(row)
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.CostCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.CostCurrency, err)
	}

	return domain.Product{
		ID:       row.ID,
		Name:     row.Name,
		Category: row.Category,
		Cost:     domain.Money{Amount: row.CostAmount, Currency: parsedCurrency},
		Rating:   int(row.Rating),
		Image:    row.Image,
	}, nil
}
