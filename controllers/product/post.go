package productControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	"github.com/freshkart/storefront-api/models"
)

type ProductData struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	OfferPrice  float64 `json:"offerPrice"`
	Category    string  `json:"category"`
	Rating      int     `json:"rating"`
}

// CreateProduct handles POST /api/product/add: a multipart form with a
// "productData" JSON field and one or more "images" files.
func CreateProduct(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.PostForm("productData")
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "productData is required"})
			return
		}

		var data ProductData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid productData: " + err.Error()})
			return
		}
		if data.Name == "" || data.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name and category are required"})
			return
		}
		if data.Price <= 0 || data.OfferPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "price and offerPrice must be > 0"})
			return
		}
		if err := validateRating(data.Rating); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form: " + err.Error()})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one image is required"})
			return
		}

		images, err := saveUploadedImages(c, cfg, files, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store images"})
			return
		}

		product := models.Product{
			Name:        data.Name,
			Description: data.Description,
			Price:       data.Price,
			OfferPrice:  data.OfferPrice,
			Category:    data.Category,
			Rating:      data.Rating,
			InStock:     true,
			Images:      images,
		}
		if err := db.Create(&product).Error; err != nil {
			removeStoredImages(cfg, images)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Added", "product": product})
	}
}
