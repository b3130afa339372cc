package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"

	"github.com/freshkart/storefront-api/config"
)

func TestStripeWebhookRejectsBadSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A nil db makes any state change panic, so a rejected signature must
	// bail out before touching anything.
	r := gin.New()
	r.POST("/stripe", StripeWebhook(nil, config.Config{StripeHook: "whsec_test"}))

	payload := `{"id":"evt_test","type":"checkout.session.completed"}`

	for name, sig := range map[string]string{
		"garbage signature": "t=123,v1=deadbeef",
		"missing signature": "",
	} {
		req := httptest.NewRequest(http.MethodPost, "/stripe", strings.NewReader(payload))
		if sig != "" {
			req.Header.Set("Stripe-Signature", sig)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.Contains(t, w.Body.String(), "Webhook Error", name)
		assert.NotContains(t, w.Body.String(), "received", name)
	}
}

func TestSessionPaid(t *testing.T) {
	assert.True(t, sessionPaid(&stripe.CheckoutSession{
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_123"},
	}))

	// An open session can already carry a PaymentIntent; that alone does
	// not make it paid.
	assert.False(t, sessionPaid(&stripe.CheckoutSession{
		PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_123"},
	}))

	assert.False(t, sessionPaid(nil))
}
