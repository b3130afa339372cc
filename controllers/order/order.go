package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	"github.com/freshkart/storefront-api/models"
	"github.com/freshkart/storefront-api/pricing"
)

type OrderItemInput struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderInput struct {
	Items   []OrderItemInput `json:"items"`
	Address uint             `json:"address"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// quoteOrder prices the submitted line items against the given product set
// and builds the immutable order-item snapshot. Prices always come from the
// catalog, never from the client.
func quoteOrder(cfg pricing.Config, inputs []OrderItemInput, products map[uint]models.Product) (pricing.Quote, []models.OrderItem, error) {
	lines := make([]pricing.Line, len(inputs))
	for i, in := range inputs {
		lines[i] = pricing.Line{ProductID: in.Product, Quantity: in.Quantity}
	}

	lookup := func(id string) (pricing.Product, bool) {
		productID, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return pricing.Product{}, false
		}
		p, ok := products[uint(productID)]
		if !ok {
			return pricing.Product{}, false
		}
		return pricing.Product{Name: p.Name, OfferPrice: decimal.NewFromFloat(p.OfferPrice)}, true
	}

	quote, err := cfg.Quote(lines, lookup)
	if err != nil {
		return pricing.Quote{}, nil, err
	}

	items := make([]models.OrderItem, len(inputs))
	for i, in := range inputs {
		productID, _ := strconv.ParseUint(in.Product, 10, 64)
		p := products[uint(productID)]
		items[i] = models.OrderItem{
			ProductID:  p.ID,
			Name:       p.Name,
			OfferPrice: p.OfferPrice,
			Quantity:   in.Quantity,
		}
	}
	return quote, items, nil
}

// loadProducts fetches every product referenced by the submitted items.
// Ids that don't resolve simply stay absent and surface as unknown-product
// errors from the quote, before anything is persisted.
func loadProducts(db *gorm.DB, inputs []OrderItemInput) (map[uint]models.Product, error) {
	var ids []uint
	for _, in := range inputs {
		if id, err := strconv.ParseUint(in.Product, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}

	byID := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func quoteErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, pricing.ErrEmptyCart):
		return http.StatusBadRequest, "Cart is empty"
	case errors.Is(err, pricing.ErrInvalidQuantity), errors.Is(err, pricing.ErrUnknownProduct):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// validateCheckout runs the shared COD/card checkout validation and returns
// the quote, the order-item snapshot and the resolved address. On failure it
// has already written the error response.
func validateCheckout(c *gin.Context, db *gorm.DB, cfg config.Config, userID string) (pricing.Quote, []models.OrderItem, *models.Address, bool) {
	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return pricing.Quote{}, nil, nil, false
	}
	if input.Address == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Address is required"})
		return pricing.Quote{}, nil, nil, false
	}

	var address models.Address
	if err := db.Where("id = ? AND user_id = ?", input.Address, userID).First(&address).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Address not found"})
		return pricing.Quote{}, nil, nil, false
	}

	products, err := loadProducts(db, input.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return pricing.Quote{}, nil, nil, false
	}

	quote, items, err := quoteOrder(cfg.Pricing, input.Items, products)
	if err != nil {
		status, msg := quoteErrorStatus(err)
		c.JSON(status, gin.H{"success": false, "message": msg})
		return pricing.Quote{}, nil, nil, false
	}

	return quote, items, &address, true
}

// PlaceOrderCOD handles POST /api/order/cod. The order is persisted with the
// server-computed total; stock is never mutated here.
func PlaceOrderCOD(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
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
			PaymentType: models.PaymentCOD,
			Status:      models.StatusOrderPlaced,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order placed successfully"})
	}
}

// paidTransition returns the column updates that move an order into the paid
// state. An already-paid order yields no updates: the amount, flags and
// payment reference stay as they are.
func paidTransition(order models.Order, paymentRef string) (map[string]interface{}, bool) {
	if order.IsPaid {
		return nil, false
	}
	return map[string]interface{}{
		"is_paid":     true,
		"status":      models.StatusPaymentReceived,
		"payment_ref": paymentRef,
	}, true
}

// markOrderPaid flips an order to paid and clears the buyer's cart. Calling
// it for an already-paid order is a no-op. Both the webhook and the
// confirmation poll reconcile through here.
func markOrderPaid(db *gorm.DB, orderID, paymentRef string) error {
	id, err := strconv.ParseUint(orderID, 10, 64)
	if err != nil {
		return gorm.ErrRecordNotFound
	}

	var paidOrder *models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, id).Error; err != nil {
			return err
		}
		updates, ok := paidTransition(order, paymentRef)
		if !ok {
			return nil
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}
		order.IsPaid = true
		order.Status = models.StatusPaymentReceived
		paidOrder = &order

		var cart models.Cart
		if err := tx.Where("user_id = ?", order.UserID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return err
	}

	// Card orders reach the seller feed once payment lands.
	if paidOrder != nil {
		broadcastNewOrder(*paidOrder)
	}
	return nil
}

// deleteUnpaidOrder removes an abandoned checkout's order. Paid orders are
// left untouched.
func deleteUnpaidOrder(db *gorm.DB, orderID string) error {
	id, err := strconv.ParseUint(orderID, 10, 64)
	if err != nil {
		return gorm.ErrRecordNotFound
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		if order.IsPaid {
			return nil
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// GET /api/order/user
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		err := db.
			Where("user_id = ? AND (payment_type = ? OR is_paid = ?)", userID, models.PaymentCOD, true).
			Preload("Items").
			Preload("Address").
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /api/order/all (seller)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		err := db.
			Where("payment_type = ? OR is_paid = ?", models.PaymentCOD, true).
			Preload("Items").
			Preload("Address").
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// PATCH /api/order/:id/delivered (seller)
func ToggleDelivered(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		if err := db.Model(&order).Update("is_delivered", !order.IsDelivered).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "isDelivered": !order.IsDelivered})
	}
}

// DELETE /api/order/:id (seller)
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
	}
}
