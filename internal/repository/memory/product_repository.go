package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
)

type productRepository struct {
	access accessor
}

func (r *productRepository) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	var product domain.Product
	err := r.access(func(st *state) error {
		stored, ok := st.products[id]
		if !ok {
			return fmt.Errorf("product[%s]: %w", id, port.ErrNotFound)
		}
		product = stored
		return nil
	})
	return product, err
}

func (r *productRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.access(func(st *state) error {
		products = make([]domain.Product, 0, len(st.products))
		for _, p := range st.products {
			products = append(products, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// same order as the Postgres repository
	sort.Slice(products, func(i, j int) bool {
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].ID.String() < products[j].ID.String()
	})

	return products, nil
}

func (r *productRepository) CreateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	if product.ID == uuid.Nil {
		return domain.Product{}, fmt.Errorf("product ID is empty")
	}

	err := r.access(func(st *state) error {
		if _, ok := st.products[product.ID]; ok {
			return fmt.Errorf("product[%s]: %w", product.ID, port.ErrAlreadyExists)
		}
		st.products[product.ID] = product
		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}
