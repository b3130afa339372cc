package productControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/freshkart/storefront-api/models"
)

// GET /api/product/export
//
// Streams the catalog as an .xlsx download for the seller dashboard.
func ExportProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Images").Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Category", "Price", "OfferPrice",
			"Rating", "InStock", "Images", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			var urls []string
			for _, img := range p.Images {
				urls = append(urls, img.URL)
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.OfferPrice)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(strings.Join(urls, ","))
			row.AddCell().SetValue(p.CreatedAt.Format(time.RFC3339))
		}

		filename := "products_" + time.Now().Format("20060102_150405") + ".xlsx"
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
