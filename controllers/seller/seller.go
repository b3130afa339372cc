package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshkart/storefront-api/auth"
	"github.com/freshkart/storefront-api/config"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/seller/login
//
// The seller is a single env-configured account; there is no seller table.
func Login(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing field"})
			return
		}

		if input.Email != cfg.SellerEmail || input.Password != cfg.SellerPass {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		token, err := auth.IssueSellerToken(cfg.JWTSecret, input.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		auth.SetAuthCookie(c, auth.SellerCookie, token, cfg.Production())

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged In"})
	}
}

// GET /api/seller/is-auth
func IsAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /api/seller/logout
func Logout(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearAuthCookie(c, auth.SellerCookie, cfg.Production())
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged Out"})
	}
}
