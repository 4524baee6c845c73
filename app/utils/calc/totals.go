package calc

import (
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopspring/decimal"
)

// LineTotal derives a cart line's total: price*qty - discount.
func LineTotal(price decimal.Decimal, qty int, discount decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty))).Sub(discount)
}

// CartTotals re-derives the denormalized cart summary from the full
// item set. Every mutation of a cart item must be followed by this
// inside the same transaction; nothing updates the totals incrementally.
func CartTotals(items []models.CartItem) (total, discount decimal.Decimal) {
	for _, item := range items {
		total = total.Add(item.LineTotal)
		discount = discount.Add(item.Discount)
	}
	return total, discount
}
