// Package catalog loads the bundled product list into a product store.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

//go:embed seed.json
var seedJSON []byte

type seedProduct struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Rating   int             `json:"rating"`
	Image    string          `json:"image"`
}

// Products returns the bundled catalog priced in unit.
func Products(unit currency.Unit) ([]domain.Product, error) {
	var seeds []seedProduct
	if err := json.Unmarshal(seedJSON, &seeds); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	products := make([]domain.Product, 0, len(seeds))
	for _, s := range seeds {
		products = append(products, domain.Product{
			ID:       s.ID,
			Name:     s.Name,
			Category: s.Category,
			Cost:     domain.Money{Amount: s.Cost, Currency: unit},
			Rating:   s.Rating,
			Image:    s.Image,
		})
	}

	return products, nil
}

// Seed creates the bundled products, skipping those already present.
// It returns the number of products created.
func Seed(ctx context.Context, repo port.ProductRepository, unit currency.Unit) (int, error) {
	products, err := Products(unit)
	if err != nil {
		return 0, err
	}

	var created int
	for _, p := range products {
		_, err := repo.CreateProduct(ctx, p)
		if errors.Is(err, port.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("repo.CreateProduct[%s]: %w", p.ID, err)
		}
		created++
	}

	return created, nil
}
