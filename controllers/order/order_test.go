package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/storefront-api/models"
	"github.com/freshkart/storefront-api/pricing"
)

var testCatalog = map[uint]models.Product{
	1: {ID: 1, Name: "Potato", OfferPrice: 40, Price: 45},
	2: {ID: 2, Name: "Rice", OfferPrice: 60, Price: 70},
}

func TestQuoteOrderAmountInvariant(t *testing.T) {
	cfg := pricing.DefaultConfig()

	quote, items, err := quoteOrder(cfg, []OrderItemInput{
		{Product: "1", Quantity: 2},
	}, testCatalog)
	require.NoError(t, err)

	// subtotal 80, tax round(1.6)=2, fee 50
	assert.Equal(t, "132", quote.Total.String())
	assert.Equal(t, quote.Subtotal.Add(quote.Tax).Add(quote.DeliveryFee).String(), quote.Total.String())

	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, "Potato", items[0].Name)
	assert.Equal(t, float64(40), items[0].OfferPrice)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestQuoteOrderSnapshotUsesCatalogPrices(t *testing.T) {
	cfg := pricing.DefaultConfig()

	quote, items, err := quoteOrder(cfg, []OrderItemInput{
		{Product: "2", Quantity: 2},
	}, testCatalog)
	require.NoError(t, err)

	// subtotal 120 -> free delivery, tax round(2.4)=2
	assert.Equal(t, "122", quote.Total.String())
	assert.Equal(t, float64(60), items[0].OfferPrice, "offer price, not list price")
}

func TestQuoteOrderUnknownProduct(t *testing.T) {
	cfg := pricing.DefaultConfig()

	_, _, err := quoteOrder(cfg, []OrderItemInput{
		{Product: "1", Quantity: 1},
		{Product: "999", Quantity: 1},
	}, testCatalog)
	assert.ErrorIs(t, err, pricing.ErrUnknownProduct)
}

func TestQuoteOrderMalformedProductID(t *testing.T) {
	cfg := pricing.DefaultConfig()

	_, _, err := quoteOrder(cfg, []OrderItemInput{
		{Product: "abc", Quantity: 1},
	}, testCatalog)
	assert.ErrorIs(t, err, pricing.ErrUnknownProduct)
}

func TestQuoteOrderEmptyItems(t *testing.T) {
	cfg := pricing.DefaultConfig()

	_, _, err := quoteOrder(cfg, nil, testCatalog)
	assert.ErrorIs(t, err, pricing.ErrEmptyCart)
}

func TestQuoteOrderInvalidQuantity(t *testing.T) {
	cfg := pricing.DefaultConfig()

	_, _, err := quoteOrder(cfg, []OrderItemInput{
		{Product: "1", Quantity: 0},
	}, testCatalog)
	assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)
}

func TestTaxLineName(t *testing.T) {
	assert.Equal(t, "Tax (2%)", taxLineName(pricing.DefaultConfig()))
	assert.Equal(t, "Tax (5%)", taxLineName(pricing.Config{TaxRateBps: 500}))
	assert.Equal(t, "Tax (2.5%)", taxLineName(pricing.Config{TaxRateBps: 250}))
}

func TestPaidTransitionMarksUnpaidOrder(t *testing.T) {
	order := models.Order{ID: 7, Amount: 132, Status: models.StatusOrderPlaced}

	updates, ok := paidTransition(order, "pi_123")
	require.True(t, ok)
	assert.Equal(t, true, updates["is_paid"])
	assert.Equal(t, models.StatusPaymentReceived, updates["status"])
	assert.Equal(t, "pi_123", updates["payment_ref"])
	assert.NotContains(t, updates, "amount")
}

func TestPaidTransitionIsIdempotent(t *testing.T) {
	order := models.Order{ID: 7, Amount: 132, Status: models.StatusOrderPlaced}

	updates, ok := paidTransition(order, "pi_123")
	require.True(t, ok)

	// Apply the first transition, then reconcile the same payment again.
	order.IsPaid = updates["is_paid"].(bool)
	order.Status = updates["status"].(string)

	again, ok := paidTransition(order, "pi_456")
	assert.False(t, ok)
	assert.Nil(t, again)
	assert.Equal(t, float64(132), order.Amount)
	assert.True(t, order.IsPaid)
	assert.Equal(t, models.StatusPaymentReceived, order.Status)
}

func TestSellerOrderHandlersRejectMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A nil db makes any query panic, so rejection must happen first.
	r := gin.New()
	r.PATCH("/api/order/:id/delivered", ToggleDelivered(nil))
	r.DELETE("/api/order/:id", DeleteOrder(nil))

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/api/order/abc/delivered"},
		{http.MethodDelete, "/api/order/abc"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.path)
		assert.Contains(t, w.Body.String(), "Invalid order ID")
	}
}
