package productControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/storefront-api/models"
)

func imgs(storageIDs ...string) []models.ProductImage {
	out := make([]models.ProductImage, len(storageIDs))
	for i, id := range storageIDs {
		out[i] = models.ProductImage{StorageID: id, URL: "/uploads/" + id, Position: i}
	}
	return out
}

func storageIDs(images []models.ProductImage) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = img.StorageID
	}
	return out
}

func TestPlanImageSlotsKeepAll(t *testing.T) {
	existing := imgs("products/a.jpg", "products/b.jpg")

	retained, removed := planImageSlots(existing, []string{"products/a.jpg", "products/b.jpg"})
	assert.Equal(t, []string{"products/a.jpg", "products/b.jpg"}, storageIDs(retained))
	assert.Empty(t, removed)
}

func TestPlanImageSlotsDropsUnlisted(t *testing.T) {
	existing := imgs("products/a.jpg", "products/b.jpg", "products/c.jpg")

	retained, removed := planImageSlots(existing, []string{"products/c.jpg"})
	assert.Equal(t, []string{"products/c.jpg"}, storageIDs(retained))
	assert.Equal(t, []string{"products/a.jpg", "products/b.jpg"}, storageIDs(removed))
}

func TestPlanImageSlotsReordersByKeepList(t *testing.T) {
	existing := imgs("products/a.jpg", "products/b.jpg")

	retained, _ := planImageSlots(existing, []string{"products/b.jpg", "products/a.jpg"})
	require.Len(t, retained, 2)
	assert.Equal(t, []string{"products/b.jpg", "products/a.jpg"}, storageIDs(retained))
	assert.Equal(t, 0, retained[0].Position)
	assert.Equal(t, 1, retained[1].Position)
}

func TestPlanImageSlotsIgnoresForeignIDs(t *testing.T) {
	existing := imgs("products/a.jpg")

	retained, removed := planImageSlots(existing, []string{"products/other.jpg", "products/a.jpg"})
	assert.Equal(t, []string{"products/a.jpg"}, storageIDs(retained))
	assert.Empty(t, removed)
}

func TestPlanImageSlotsEmptyKeepRemovesAll(t *testing.T) {
	existing := imgs("products/a.jpg", "products/b.jpg")

	retained, removed := planImageSlots(existing, nil)
	assert.Empty(t, retained)
	assert.Len(t, removed, 2)
}

func TestSplitKeepList(t *testing.T) {
	assert.Nil(t, splitKeepList(""))
	assert.Equal(t, []string{"a", "b"}, splitKeepList("a, b"))
	assert.Equal(t, []string{"a"}, splitKeepList("a,,"))
}

func TestValidateRating(t *testing.T) {
	for _, bad := range []int{0, -1, 6} {
		assert.Error(t, validateRating(bad), "rating %d", bad)
	}
	for _, ok := range []int{1, 3, 5} {
		assert.NoError(t, validateRating(ok), "rating %d", ok)
	}
}
