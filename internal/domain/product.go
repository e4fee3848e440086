package domain

import "github.com/google/uuid"

type Product struct {
	ID       uuid.UUID
	Name     string
	Category string
	Cost     Money
	Rating   int
	Image    string
}

// ProductSnapshot is the copy of a Product stored inside a cart line item.
type ProductSnapshot struct {
	ID       uuid.UUID
	Name     string
	Category string
	Cost     Money
	Rating   int
	Image    string
}

func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Cost:     p.Cost,
		Rating:   p.Rating,
		Image:    p.Image,
	}
}
