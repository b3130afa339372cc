package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	orderControllers "github.com/freshkart/storefront-api/controllers/order"
	"github.com/freshkart/storefront-api/middleware"
)

// SetupOrderRoutes registers the "/api/order/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authUser := middleware.AuthUser(cfg.JWTSecret)
	authSeller := middleware.AuthSeller(cfg.JWTSecret, cfg.SellerEmail)

	orderGroup := r.Group("/api/order")
	{
		orderGroup.POST("/cod", authUser, orderControllers.PlaceOrderCOD(db, cfg))
		orderGroup.POST("/stripe", authUser, orderControllers.PlaceOrderStripe(db, cfg))
		orderGroup.GET("/confirm", authUser, orderControllers.ConfirmSession(db, cfg))
		orderGroup.GET("/user", authUser, orderControllers.GetUserOrders(db))

		orderGroup.GET("/all", authSeller, orderControllers.GetAllOrders(db))
		orderGroup.GET("/ws", authSeller, orderControllers.OrderFeed)
		orderGroup.PATCH("/:id/delivered", authSeller, orderControllers.ToggleDelivered(db))
		orderGroup.DELETE("/:id", authSeller, orderControllers.DeleteOrder(db))
	}
}
