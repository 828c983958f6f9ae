package pricing

import (
	"bookit/internal/domain"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed checkout tax, applied to the subtotal and rounded to
// the nearest unit.
var TaxRate = decimal.NewFromFloat(0.18)

type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Taxes    float64 `json:"taxes"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// NewQuote reproduces the checkout formula: subtotal = price*quantity,
// taxes = round(subtotal*0.18), percentage discount = round(subtotal*d/100),
// fixed discount = d. The total is floored at zero so a large fixed discount
// can never produce a negative charge.
func NewQuote(price float64, quantity int, discount float64, discountType domain.DiscountType) Quote {
	subtotal := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
	taxes := subtotal.Mul(TaxRate).Round(0)

	var off decimal.Decimal
	switch discountType {
	case domain.DiscountPercentage:
		off = subtotal.Mul(decimal.NewFromFloat(discount)).Div(decimal.NewFromInt(100)).Round(0)
	case domain.DiscountFixed:
		off = decimal.NewFromFloat(discount)
	}

	total := subtotal.Add(taxes).Sub(off)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Quote{
		Subtotal: subtotal.InexactFloat64(),
		Taxes:    taxes.InexactFloat64(),
		Discount: off.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
