package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	cartControllers "github.com/freshkart/storefront-api/controllers/cart"
	"github.com/freshkart/storefront-api/middleware"
)

// SetupCartRoutes registers the "/api/cart/*" endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.AuthUser(cfg.JWTSecret))
	{
		cartGroup.POST("/update", cartControllers.UpdateCart(db))
		cartGroup.POST("/merge", cartControllers.MergeCart(db))
	}
}
