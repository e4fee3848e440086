package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cart is identified by the owner's email, there is at most one cart per user.
type Cart struct {
	Email         string
	Items         []CartItem
	PaymentOption string
}

// CartItem embeds a snapshot of the product taken when it was added,
// later catalog changes do not affect it.
type CartItem struct {
	Product  ProductSnapshot
	Quantity int

	CreatedAt time.Time
}

// ItemIndex returns the position of the line item for productID or -1.
func (c Cart) ItemIndex(productID uuid.UUID) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a copy whose Items slice can be mutated independently.
func (c Cart) Clone() Cart {
	clone := c
	if c.Items != nil {
		clone.Items = make([]CartItem, len(c.Items))
		copy(clone.Items, c.Items)
	}
	return clone
}
