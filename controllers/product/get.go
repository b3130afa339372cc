package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/models"
)

// GET /api/product/list
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Preload("Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") })

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// POST /api/product/by-id
func ProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ID uint `json:"id"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "id is required"})
			return
		}

		var product models.Product
		err := db.Preload("Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
			First(&product, input.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
