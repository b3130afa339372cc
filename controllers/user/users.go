package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/auth"
	"github.com/freshkart/storefront-api/config"
	"github.com/freshkart/storefront-api/models"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func userPayload(u models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"cartItems": u.Cart.ItemMap(),
	}
}

// POST /api/user/register
func Register(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing Details"})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already Exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: string(hash),
			Cart:         models.Cart{},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		token, err := auth.IssueUserToken(cfg.JWTSecret, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		auth.SetAuthCookie(c, auth.UserCookie, token, cfg.Production())

		c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload(user)})
	}
}

// POST /api/user/login
func Login(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing field"})
			return
		}

		var user models.User
		if err := db.Preload("Cart.Items").Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		token, err := auth.IssueUserToken(cfg.JWTSecret, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		auth.SetAuthCookie(c, auth.UserCookie, token, cfg.Production())

		c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload(user)})
	}
}

// GET /api/user/is-auth
func IsAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.Preload("Cart.Items").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload(user)})
	}
}

// GET /api/user/logout
func Logout(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearAuthCookie(c, auth.UserCookie, cfg.Production())
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged Out"})
	}
}
