package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("empty cart")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrUnknownProduct  = errors.New("unknown product")
)

// Config holds the checkout constants. The same values are served to the
// client on /api/config/pricing so display and billing cannot drift.
type Config struct {
	TaxRateBps      int64 `json:"taxRateBps"`      // tax on subtotal, in basis points
	DeliveryFee     int64 `json:"deliveryFee"`     // flat surcharge in whole currency units
	FreeDeliveryMin int64 `json:"freeDeliveryMin"` // subtotal at or above which delivery is free
}

func DefaultConfig() Config {
	return Config{TaxRateBps: 200, DeliveryFee: 50, FreeDeliveryMin: 100}
}

// Line is a (product, quantity) pair as submitted at checkout.
type Line struct {
	ProductID string
	Quantity  int
}

// Product is the authoritative pricing view of a catalog product.
type Product struct {
	Name       string
	OfferPrice decimal.Decimal
}

// Lookup resolves a product id to its current authoritative price.
// Client-submitted prices are never consulted.
type Lookup func(productID string) (Product, bool)

// QuoteLine is a priced line item; UnitMinor is the unit price in minor
// currency units for payment-gateway line items.
type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitMinor int64
}

type Quote struct {
	Lines       []QuoteLine
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// AmountMinor returns the grand total in minor currency units.
func (q Quote) AmountMinor() int64 {
	return toMinor(q.Total)
}

// TaxMinor returns the tax amount in minor currency units.
func (q Quote) TaxMinor() int64 {
	return toMinor(q.Tax)
}

// DeliveryFeeMinor returns the delivery fee in minor currency units.
func (q Quote) DeliveryFeeMinor() int64 {
	return toMinor(q.DeliveryFee)
}

// Quote computes the authoritative order total for a set of line items:
//
//	subtotal    = sum(offerPrice * quantity)
//	deliveryFee = DeliveryFee when 0 < subtotal < FreeDeliveryMin, else 0
//	tax         = subtotal * TaxRateBps/10000, rounded to whole units
//	total       = subtotal + tax + deliveryFee
//
// Tax is computed on the subtotal only; the delivery fee is never taxed.
// Rounding is half away from zero, the single rule for every payment path.
// All validation happens before the caller persists anything.
func (c Config) Quote(lines []Line, lookup Lookup) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, ErrEmptyCart
	}
	for i, l := range lines {
		if l.Quantity <= 0 {
			return Quote{}, fmt.Errorf("item %d: %w", i+1, ErrInvalidQuantity)
		}
	}

	q := Quote{Subtotal: decimal.Zero}
	for _, l := range lines {
		p, ok := lookup(l.ProductID)
		if !ok {
			return Quote{}, fmt.Errorf("%w: %s", ErrUnknownProduct, l.ProductID)
		}
		q.Lines = append(q.Lines, QuoteLine{
			ProductID: l.ProductID,
			Name:      p.Name,
			Quantity:  l.Quantity,
			UnitMinor: toMinor(p.OfferPrice),
		})
		q.Subtotal = q.Subtotal.Add(p.OfferPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	q.Tax = q.Subtotal.Mul(decimal.New(c.TaxRateBps, -4)).Round(0)

	q.DeliveryFee = decimal.Zero
	threshold := decimal.NewFromInt(c.FreeDeliveryMin)
	if q.Subtotal.IsPositive() && q.Subtotal.LessThan(threshold) {
		q.DeliveryFee = decimal.NewFromInt(c.DeliveryFee)
	}

	q.Total = q.Subtotal.Add(q.Tax).Add(q.DeliveryFee)
	return q, nil
}

func toMinor(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
