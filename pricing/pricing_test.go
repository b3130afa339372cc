package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogLookup(products map[string]Product) Lookup {
	return func(id string) (Product, bool) {
		p, ok := products[id]
		return p, ok
	}
}

func price(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestQuoteBelowFreeDeliveryThreshold(t *testing.T) {
	cfg := DefaultConfig()
	lookup := catalogLookup(map[string]Product{
		"a": {Name: "Potato", OfferPrice: price(40)},
	})

	q, err := cfg.Quote([]Line{{ProductID: "a", Quantity: 2}}, lookup)
	require.NoError(t, err)

	assert.Equal(t, "80", q.Subtotal.String())
	assert.Equal(t, "2", q.Tax.String(), "tax = round(80*0.02) = round(1.6)")
	assert.Equal(t, "50", q.DeliveryFee.String())
	assert.Equal(t, "132", q.Total.String())
}

func TestQuoteAboveFreeDeliveryThreshold(t *testing.T) {
	cfg := DefaultConfig()
	lookup := catalogLookup(map[string]Product{
		"b": {Name: "Rice", OfferPrice: price(60)},
	})

	q, err := cfg.Quote([]Line{{ProductID: "b", Quantity: 2}}, lookup)
	require.NoError(t, err)

	assert.Equal(t, "120", q.Subtotal.String())
	assert.Equal(t, "2", q.Tax.String(), "tax = round(120*0.02) = round(2.4)")
	assert.True(t, q.DeliveryFee.IsZero(), "free delivery at or above threshold")
	assert.Equal(t, "122", q.Total.String())
}

func TestQuoteTaxExcludesDeliveryFee(t *testing.T) {
	// Fee large enough that taxing it would change the result.
	cfg := Config{TaxRateBps: 200, DeliveryFee: 500, FreeDeliveryMin: 100}
	lookup := catalogLookup(map[string]Product{
		"a": {Name: "Milk", OfferPrice: price(50)},
	})

	q, err := cfg.Quote([]Line{{ProductID: "a", Quantity: 1}}, lookup)
	require.NoError(t, err)

	assert.Equal(t, "1", q.Tax.String(), "tax on subtotal 50 only, not on 550")
	assert.Equal(t, "551", q.Total.String())
}

func TestQuoteAtExactThresholdIsFree(t *testing.T) {
	cfg := DefaultConfig()
	lookup := catalogLookup(map[string]Product{
		"a": {Name: "Oil", OfferPrice: price(100)},
	})

	q, err := cfg.Quote([]Line{{ProductID: "a", Quantity: 1}}, lookup)
	require.NoError(t, err)
	assert.True(t, q.DeliveryFee.IsZero())
}

func TestQuoteMultipleLines(t *testing.T) {
	cfg := DefaultConfig()
	lookup := catalogLookup(map[string]Product{
		"a": {Name: "Potato", OfferPrice: price(25.5)},
		"b": {Name: "Onion", OfferPrice: price(12)},
	})

	q, err := cfg.Quote([]Line{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 3},
	}, lookup)
	require.NoError(t, err)

	// 51 + 36 = 87 -> tax round(1.74)=2, fee 50
	assert.Equal(t, "87", q.Subtotal.String())
	assert.Equal(t, "2", q.Tax.String())
	assert.Equal(t, "50", q.DeliveryFee.String())
	assert.Equal(t, "139", q.Total.String())
	require.Len(t, q.Lines, 2)
	assert.Equal(t, int64(2550), q.Lines[0].UnitMinor)
	assert.Equal(t, int64(1200), q.Lines[1].UnitMinor)
}

func TestQuoteEmptyCart(t *testing.T) {
	cfg := DefaultConfig()
	_, err := cfg.Quote(nil, catalogLookup(nil))
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestQuoteInvalidQuantity(t *testing.T) {
	cfg := DefaultConfig()
	lookup := catalogLookup(map[string]Product{
		"a": {Name: "Potato", OfferPrice: price(40)},
	})

	for _, qty := range []int{0, -1, -100} {
		_, err := cfg.Quote([]Line{{ProductID: "a", Quantity: qty}}, lookup)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", qty)
	}
}

func TestQuoteUnknownProduct(t *testing.T) {
	cfg := DefaultConfig()
	lookup := catalogLookup(map[string]Product{
		"a": {Name: "Potato", OfferPrice: price(40)},
	})

	_, err := cfg.Quote([]Line{
		{ProductID: "a", Quantity: 1},
		{ProductID: "missing", Quantity: 1},
	}, lookup)
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestQuoteMinorUnitAmounts(t *testing.T) {
	cfg := DefaultConfig()
	lookup := catalogLookup(map[string]Product{
		"a": {Name: "Potato", OfferPrice: price(40)},
	})

	q, err := cfg.Quote([]Line{{ProductID: "a", Quantity: 2}}, lookup)
	require.NoError(t, err)

	assert.Equal(t, int64(13200), q.AmountMinor())
	assert.Equal(t, int64(200), q.TaxMinor())
	assert.Equal(t, int64(5000), q.DeliveryFeeMinor())
}
