package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	orderControllers "github.com/freshkart/storefront-api/controllers/order"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	// Payment-gateway webhook takes the raw body and does its own
	// signature verification; it sits outside /api and all auth.
	r.POST("/stripe", orderControllers.StripeWebhook(db, cfg))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is working")
	})

	// Pricing constants shared with the client so the displayed totals
	// match the authoritative ones.
	r.GET("/api/config/pricing", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "pricing": cfg.Pricing})
	})

	SetupUserRoutes(r, db, cfg)
	SetupSellerRoutes(r, cfg)
	SetupProductRoutes(r, db, cfg)
	SetupCartRoutes(r, db, cfg)
	SetupAddressRoutes(r, db, cfg)
	SetupOrderRoutes(r, db, cfg)
}
