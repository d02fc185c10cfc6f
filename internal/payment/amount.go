package payment

import "github.com/shopspring/decimal"

// amountPlaces is the precision of every amount in a Quote, matching the
// two decimals of the payment payload.
const amountPlaces = 2

// Calculator derives the payable total of a book order.
type Calculator struct {
	UnitPrice   decimal.Decimal
	FixedFee    decimal.Decimal
	MinQuantity int
}

// Quote is the breakdown of one order.
type Quote struct {
	Quantity int
	Extra    decimal.Decimal
	Base     decimal.Decimal // UnitPrice*Quantity + FixedFee
	Total    decimal.Decimal // Base + Extra
}

// Quote computes the total for quantity books plus a voluntary extra amount.
// Quantity is raised to MinQuantity and a negative extra counts as zero.
// Amounts are rounded half away from zero to two decimals.
func (c Calculator) Quote(quantity int, extra decimal.Decimal) Quote {
	minQty := c.MinQuantity
	if minQty < 1 {
		minQty = 1
	}
	if quantity < minQty {
		quantity = minQty
	}
	if extra.IsNegative() {
		extra = decimal.Zero
	}
	extra = extra.Round(amountPlaces)

	base := c.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Add(c.FixedFee).Round(amountPlaces)
	return Quote{
		Quantity: quantity,
		Extra:    extra,
		Base:     base,
		Total:    base.Add(extra),
	}
}
