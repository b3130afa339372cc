package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	userControllers "github.com/freshkart/storefront-api/controllers/user"
	"github.com/freshkart/storefront-api/middleware"
)

// SetupUserRoutes registers the "/api/user/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", userControllers.Register(db, cfg))
		userGroup.POST("/login", userControllers.Login(db, cfg))
		userGroup.GET("/is-auth", middleware.AuthUser(cfg.JWTSecret), userControllers.IsAuth(db))
		userGroup.GET("/logout", middleware.AuthUser(cfg.JWTSecret), userControllers.Logout(cfg))
	}
}
