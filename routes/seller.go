package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/freshkart/storefront-api/config"
	sellerControllers "github.com/freshkart/storefront-api/controllers/seller"
	"github.com/freshkart/storefront-api/middleware"
)

// SetupSellerRoutes registers the "/api/seller/*" endpoints.
func SetupSellerRoutes(r *gin.Engine, cfg config.Config) {
	sellerGroup := r.Group("/api/seller")
	{
		sellerGroup.POST("/login", sellerControllers.Login(cfg))
		sellerGroup.GET("/is-auth", middleware.AuthSeller(cfg.JWTSecret, cfg.SellerEmail), sellerControllers.IsAuth())
		sellerGroup.GET("/logout", sellerControllers.Logout(cfg))
	}
}
