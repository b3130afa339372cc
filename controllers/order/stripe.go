package orderControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	"github.com/freshkart/storefront-api/models"
	"github.com/freshkart/storefront-api/pricing"
)

func taxLineName(cfg pricing.Config) string {
	percent := strconv.FormatFloat(float64(cfg.TaxRateBps)/100, 'f', -1, 64)
	return fmt.Sprintf("Tax (%s%%)", percent)
}

// PlaceOrderStripe handles POST /api/order/stripe: persists the order unpaid,
// then creates a hosted checkout session correlated back to it via metadata.
// A crash between the two steps leaves an unpaid orphan that the
// expired-session webhook cleans up.
func PlaceOrderStripe(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		quote, items, address, ok := validateCheckout(c, db, cfg, userID)
		if !ok {
			return
		}

		order := models.Order{
			Ref:         generateOrderRef(),
			UserID:      userID,
			AddressID:   address.ID,
			Items:       items,
			Amount:      quote.Total.InexactFloat64(),
			PaymentType: models.PaymentOnline,
			Status:      models.StatusOrderPlaced,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		baseURL := c.GetHeader("Origin")
		if baseURL == "" {
			baseURL = cfg.ClientOrigin
		}

		lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(quote.Lines)+2)
		for _, line := range quote.Lines {
			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("inr"),
					UnitAmount: stripe.Int64(line.UnitMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(line.Name),
					},
				},
				Quantity: stripe.Int64(int64(line.Quantity)),
			})
		}
		if tax := quote.TaxMinor(); tax > 0 {
			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("inr"),
					UnitAmount: stripe.Int64(tax),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(taxLineName(cfg.Pricing)),
					},
				},
				Quantity: stripe.Int64(1),
			})
		}
		if fee := quote.DeliveryFeeMinor(); fee > 0 {
			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("inr"),
					UnitAmount: stripe.Int64(fee),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Delivery Fee"),
					},
				},
				Quantity: stripe.Int64(1),
			})
		}

		stripe.Key = cfg.StripeSecret
		params := &stripe.CheckoutSessionParams{
			Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
			LineItems:  lineItems,
			SuccessURL: stripe.String(baseURL + "/loader?next=my-orders&session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:  stripe.String(baseURL + "/cart"),
		}
		params.AddMetadata("orderId", strconv.FormatUint(uint64(order.ID), 10))
		params.AddMetadata("userId", userID)

		s, err := session.New(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "url": s.URL})
	}
}

// StripeWebhook handles POST /stripe. The raw body is verified against the
// signing secret before anything is trusted; a bad signature is rejected
// with no state change.
func StripeWebhook(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "failed to read body"})
			return
		}

		event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), cfg.StripeHook)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Webhook Error: " + err.Error()})
			return
		}

		switch event.Type {
		case "checkout.session.completed":
			var sess stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bad event payload"})
				return
			}
			orderID := sess.Metadata["orderId"]
			if orderID == "" {
				break
			}
			paymentRef := ""
			if sess.PaymentIntent != nil {
				paymentRef = sess.PaymentIntent.ID
			}
			if err := markOrderPaid(db, orderID, paymentRef); err != nil {
				log.Printf("❌ Webhook: failed to mark order %s paid: %v", orderID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Webhook handler failed"})
				return
			}

		case "checkout.session.expired":
			var sess stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bad event payload"})
				return
			}
			if orderID := sess.Metadata["orderId"]; orderID != "" {
				if err := deleteUnpaidOrder(db, orderID); err != nil && err != gorm.ErrRecordNotFound {
					log.Printf("❌ Webhook: failed to clean up order %s: %v", orderID, err)
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// sessionPaid reports whether a checkout session has actually settled. A
// session can carry a PaymentIntent before payment completes, so only the
// payment status counts.
func sessionPaid(s *stripe.CheckoutSession) bool {
	return s != nil && s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
}

// ConfirmSession handles GET /api/order/confirm?session_id=... — the
// success-page fallback for when the webhook hasn't fired yet. Confirming an
// already-paid order is a no-op.
func ConfirmSession(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing session_id"})
			return
		}

		stripe.Key = cfg.StripeSecret
		s, err := session.Get(sessionID, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		orderID := s.Metadata["orderId"]
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing order metadata"})
			return
		}

		if !sessionPaid(s) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment not completed"})
			return
		}

		paymentRef := ""
		if s.PaymentIntent != nil {
			paymentRef = s.PaymentIntent.ID
		}
		if err := markOrderPaid(db, orderID, paymentRef); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
