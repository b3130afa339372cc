package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/models"
)

type CartInput struct {
	CartItems map[string]int `json:"cartItems"`
}

// mergeCartMaps adds each local quantity onto the server cart. Additive per
// product id: neither source's entries are dropped.
func mergeCartMaps(server, local map[string]int) map[string]int {
	merged := make(map[string]int, len(server)+len(local))
	for id, qty := range server {
		merged[id] = qty
	}
	for id, qty := range local {
		merged[id] += qty
	}
	return merged
}

// cartItemsFromMap validates the wire cart map and converts it to rows.
func cartItemsFromMap(items map[string]int) ([]models.CartItem, error) {
	rows := make([]models.CartItem, 0, len(items))
	now := time.Now()
	for id, qty := range items {
		productID, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return nil, errors.New("invalid product id: " + id)
		}
		if qty <= 0 {
			return nil, errors.New("quantity must be > 0 for product " + id)
		}
		rows = append(rows, models.CartItem{
			ProductID: uint(productID),
			Quantity:  qty,
			AddedAt:   now,
		})
	}
	return rows, nil
}

// replaceCartItems swaps the persisted cart for the given map in one
// transaction. Whole-cart replace is last-write-wins; there is no per-item
// locking.
func replaceCartItems(db *gorm.DB, userID string, items map[string]int) (map[string]int, error) {
	rows, err := cartItemsFromMap(items)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].CartID = cart.CartID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// POST /api/cart/update
//
// Replaces the whole persisted cart with the submitted map.
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if input.CartItems == nil {
			input.CartItems = map[string]int{}
		}

		saved, err := replaceCartItems(db, userID, input.CartItems)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart Updated", "cartItems": saved})
	}
}

// POST /api/cart/merge
//
// Folds an anonymous local cart into the persisted one on login: quantities
// are summed per product id and the merged result becomes the stored cart.
func MergeCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		merged := mergeCartMaps(cart.ItemMap(), input.CartItems)
		saved, err := replaceCartItems(db, userID, merged)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart Merged", "cartItems": saved})
	}
}
