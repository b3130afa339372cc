package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	productControllers "github.com/freshkart/storefront-api/controllers/product"
	"github.com/freshkart/storefront-api/middleware"
)

// SetupProductRoutes registers the "/api/product/*" endpoints. Listing and
// lookup are public; everything else is seller-only.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authSeller := middleware.AuthSeller(cfg.JWTSecret, cfg.SellerEmail)

	productGroup := r.Group("/api/product")
	{
		productGroup.GET("/list", productControllers.ListProducts(db))
		productGroup.POST("/by-id", productControllers.ProductByID(db))

		productGroup.POST("/add", authSeller, productControllers.CreateProduct(db, cfg))
		productGroup.PUT("/stock", authSeller, productControllers.ChangeStock(db))
		productGroup.PUT("/:id", authSeller, productControllers.UpdateProduct(db, cfg))
		productGroup.DELETE("/:id", authSeller, productControllers.DeleteProduct(db, cfg))
		productGroup.GET("/export", authSeller, productControllers.ExportProducts(db))
	}
}
