package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	addressControllers "github.com/freshkart/storefront-api/controllers/address"
	"github.com/freshkart/storefront-api/middleware"
)

// SetupAddressRoutes registers the "/api/address/*" endpoints.
func SetupAddressRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	addressGroup := r.Group("/api/address")
	addressGroup.Use(middleware.AuthUser(cfg.JWTSecret))
	{
		addressGroup.POST("/add", addressControllers.AddAddress(db))
		addressGroup.GET("/get", addressControllers.GetAddresses(db))
	}
}
