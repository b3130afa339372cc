package addressControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/models"
)

type AddressInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"` // form inputs arrive as strings, coerced here
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type AddAddressInput struct {
	Address *AddressInput `json:"address"`
}

// POST /api/address/add
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddAddressInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Address == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing address"})
			return
		}
		a := input.Address
		if a.FirstName == "" || a.Street == "" || a.City == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing address fields"})
			return
		}

		zip, err := strconv.Atoi(a.Zipcode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid zipcode"})
			return
		}

		address := models.Address{
			UserID:    userID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			Street:    a.Street,
			City:      a.City,
			State:     a.State,
			Zipcode:   zip,
			Country:   a.Country,
			Phone:     a.Phone,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Address added successfully"})
	}
}

// GET /api/address/get
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var addresses []models.Address
		if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "addresses": addresses})
	}
}
