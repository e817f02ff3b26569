package order

import (
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// RoundMoney rounds to paise.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// DeliveryQuote is the outcome of the delivery fee rules.
type DeliveryQuote struct {
	Fee        decimal.Decimal
	IsFree     bool
	Breakdown  string
	DistanceKm float64
}

// Discount is the outcome of the offer rules. OfferCode is empty when nothing applied.
type Discount struct {
	Amount    decimal.Decimal
	OfferCode string
	Message   string
}

// Pricing is the server-computed price of a checkout. It is never accepted from a client.
type Pricing struct {
	subtotal decimal.Decimal
	delivery DeliveryQuote
	discount Discount
	total    decimal.Decimal
}

// NewPricing derives total = max(0, subtotal + delivery fee − discount).
func NewPricing(subtotal decimal.Decimal, delivery DeliveryQuote, discount Discount) (Pricing, error) {
	if subtotal.IsNegative() {
		return Pricing{}, errs.NewValueIsOutOfRangeError("subtotal", subtotal, 0, "∞")
	}
	if delivery.Fee.IsNegative() {
		return Pricing{}, errs.NewValueIsOutOfRangeError("delivery_fee", delivery.Fee, 0, "∞")
	}
	if discount.Amount.IsNegative() {
		return Pricing{}, errs.NewValueIsOutOfRangeError("discount_amount", discount.Amount, 0, subtotal)
	}

	total := subtotal.Add(delivery.Fee).Sub(discount.Amount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	delivery.Fee = RoundMoney(delivery.Fee)
	discount.Amount = RoundMoney(discount.Amount)
	return Pricing{
		subtotal: RoundMoney(subtotal),
		delivery: delivery,
		discount: discount,
		total:    RoundMoney(total),
	}, nil
}

func (p Pricing) Subtotal() decimal.Decimal { return p.subtotal }
func (p Pricing) Delivery() DeliveryQuote { return p.delivery }
func (p Pricing) Discount() Discount { return p.discount }
func (p Pricing) Total() decimal.Decimal { return p.total }
