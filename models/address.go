package models

import "time"

type Address struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"-"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Street    string    `gorm:"not null" json:"street"`
	City      string    `gorm:"not null" json:"city"`
	State     string    `json:"state"`
	Zipcode   int       `json:"zipcode"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"-"`
}
