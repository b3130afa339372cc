package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`      // list price
	OfferPrice  float64        `gorm:"not null" json:"offerPrice"` // sale price, authoritative for all totals
	Category    string         `gorm:"index" json:"category"`
	InStock     bool           `gorm:"default:true" json:"inStock"`
	Rating      int            `json:"rating"` // 1..5
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"image"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductImage is the canonical image shape: a public URL plus the storage
// id needed to delete the underlying file. Legacy bare-URL arrays are not
// supported; data is migrated to this shape once.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	URL       string `gorm:"not null" json:"url"`
	StorageID string `gorm:"not null" json:"storageId"`
	Position  int    `json:"-"`
}
