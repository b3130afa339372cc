package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshkart/storefront-api/auth"
)

// AuthUser validates the buyer session cookie and stores the user id in the
// request context under "user_id".
func AuthUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.UserCookie)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized"})
			return
		}

		claims, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid Token"})
			return
		}

		userID, _ := claims["id"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// AuthSeller validates the seller session cookie against the configured
// seller account.
func AuthSeller(secret, sellerEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.SellerCookie)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized"})
			return
		}

		claims, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid Token"})
			return
		}

		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)
		if role != auth.RoleSeller || email != sellerEmail {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized"})
			return
		}

		c.Next()
	}
}
