package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/models"
)

type ChangeStockInput struct {
	ID      uint  `json:"id" binding:"required"`
	InStock *bool `json:"inStock" binding:"required"`
}

// PUT /api/product/stock
func ChangeStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ChangeStockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "id and inStock are required"})
			return
		}

		result := db.Model(&models.Product{}).Where("id = ?", input.ID).Update("in_stock", *input.InStock)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stock Updated"})
	}
}
