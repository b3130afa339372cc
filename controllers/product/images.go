package productControllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshkart/storefront-api/config"
	"github.com/freshkart/storefront-api/models"
)

const imageSubdir = "products"

// planImageSlots resolves a product edit against its stored images: keep
// lists the storage ids the client retained, in display order. Everything
// else is removed. Storage ids that don't belong to the product are ignored.
func planImageSlots(existing []models.ProductImage, keep []string) (retained, removed []models.ProductImage) {
	byStorageID := make(map[string]models.ProductImage, len(existing))
	for _, img := range existing {
		byStorageID[img.StorageID] = img
	}

	kept := make(map[string]bool, len(keep))
	for _, id := range keep {
		img, ok := byStorageID[id]
		if !ok || kept[id] {
			continue
		}
		kept[id] = true
		img.Position = len(retained)
		retained = append(retained, img)
	}

	for _, img := range existing {
		if !kept[img.StorageID] {
			removed = append(removed, img)
		}
	}
	return retained, removed
}

// saveUploadedImages writes multipart files under the upload dir and returns
// image rows pointing at their public URLs.
func saveUploadedImages(c *gin.Context, cfg config.Config, files []*multipart.FileHeader, startPos int) ([]models.ProductImage, error) {
	dir := filepath.Join(cfg.UploadDir, imageSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var images []models.ProductImage
	for i, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		name := uuid.NewString() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		storageID := imageSubdir + "/" + name
		images = append(images, models.ProductImage{
			URL:       "/uploads/" + storageID,
			StorageID: storageID,
			Position:  startPos + i,
		})
	}
	return images, nil
}

// removeStoredImages deletes image files from disk, best effort.
func removeStoredImages(cfg config.Config, images []models.ProductImage) {
	for _, img := range images {
		path := filepath.Join(cfg.UploadDir, filepath.FromSlash(img.StorageID))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("❌ Failed to remove image %s: %v", img.StorageID, err)
		}
	}
}

// splitKeepList parses the comma-separated existing_images form value.
func splitKeepList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keep := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keep = append(keep, p)
		}
	}
	return keep
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
