package productControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/config"
	"github.com/freshkart/storefront-api/models"
)

// UpdateProduct handles PUT /api/product/:id. Accepts the same multipart
// fields as CreateProduct, all optional, plus "existing_images": a
// comma-separated list of storage ids to keep, in display order. Stored
// files for dropped slots are deleted; new uploads are appended after the
// retained slots.
func UpdateProduct(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Images").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		if raw := c.PostForm("productData"); raw != "" {
			var data ProductData
			if err := json.Unmarshal([]byte(raw), &data); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid productData: " + err.Error()})
				return
			}
			if data.Name != "" {
				product.Name = data.Name
			}
			if data.Description != "" {
				product.Description = data.Description
			}
			if data.Category != "" {
				product.Category = data.Category
			}
			if data.Price > 0 {
				product.Price = data.Price
			}
			if data.OfferPrice > 0 {
				product.OfferPrice = data.OfferPrice
			}
			if data.Rating != 0 {
				if err := validateRating(data.Rating); err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
					return
				}
				product.Rating = data.Rating
			}
		}

		// Image slots: retain what the client listed, drop the rest,
		// append any new uploads.
		retained, removed := planImageSlots(product.Images, splitKeepList(c.PostForm("existing_images")))

		var uploaded []models.ProductImage
		if form, err := c.MultipartForm(); err == nil {
			if files := form.File["images"]; len(files) > 0 {
				uploaded, err = saveUploadedImages(c, cfg, files, len(retained))
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store images"})
					return
				}
			}
		}

		images := append(retained, uploaded...)
		if len(images) == 0 {
			removeStoredImages(cfg, uploaded)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product must keep at least one image"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			for i := range images {
				images[i].ID = 0
				images[i].ProductID = product.ID
				images[i].Position = i
			}
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
			product.Images = nil
			return tx.Omit("Images").Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		removeStoredImages(cfg, removed)

		product.Images = images
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Updated", "product": product})
	}
}
