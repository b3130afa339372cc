package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `json:"-"`
	Cart         Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Addresses    []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
