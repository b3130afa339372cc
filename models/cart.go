package models

import (
	"strconv"
	"time"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey"`
	UserID    string     `gorm:"uniqueIndex"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	CartID    uint `gorm:"index"`
	ProductID uint
	Quantity  int
	AddedAt   time.Time
}

// ItemMap renders the cart in its wire shape: product id -> quantity.
func (c Cart) ItemMap() map[string]int {
	m := make(map[string]int, len(c.Items))
	for _, item := range c.Items {
		m[strconv.FormatUint(uint64(item.ProductID), 10)] = item.Quantity
	}
	return m
}
