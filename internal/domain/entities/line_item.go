package entities

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places kept for every price and amount.
const MoneyScale = 2

// IsWholeCents reports whether d carries no digit beyond MoneyScale; 13.000 qualifies, 0.004 does not.
func IsWholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}

// LineSpec is a requested (product, quantity) pair used to build or replace order items.
type LineSpec struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// LineItem is a frozen order line. UnitPrice is the catalog price at the moment the line was
// placed and is never refreshed afterwards.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// LineItemsTotal sums quantity × unit price over items.
func LineItemsTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
