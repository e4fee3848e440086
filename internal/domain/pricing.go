package domain

import "github.com/shopspring/decimal"

// TotalCost sums cost * quantity over the line items using the snapshot cost.
func TotalCost(items []CartItem) decimal.Decimal {
	total := decimal.Zero

	for _, item := range items {
		total = total.Add(item.Product.Cost.Amount.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}
