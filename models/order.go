package models

import "time"

type PaymentType string

const (
	PaymentCOD    PaymentType = "COD"
	PaymentOnline PaymentType = "Online"
)

const (
	StatusOrderPlaced     = "Order Placed"
	StatusPaymentReceived = "Payment Received"
)

// Order is an immutable snapshot taken at checkout. Only the paid and
// delivered flags change afterwards; deletion is explicit and irreversible.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Ref         string      `gorm:"uniqueIndex" json:"ref"`
	UserID      string      `gorm:"index;not null" json:"userId"`
	AddressID   uint        `gorm:"not null" json:"-"`
	Address     Address     `gorm:"foreignKey:AddressID" json:"address"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Amount      float64     `json:"amount"` // subtotal + tax + delivery fee, computed server-side
	PaymentType PaymentType `gorm:"type:VARCHAR(10)" json:"paymentType"`
	IsPaid      bool        `json:"isPaid"`
	IsDelivered bool        `json:"isDelivered"`
	Status      string      `gorm:"type:VARCHAR(30);default:'Order Placed'" json:"status"`
	PaymentRef  string      `json:"-"` // gateway payment intent id, set on confirmation
	CreatedAt   time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    uint    `gorm:"index" json:"-"`
	ProductID  uint    `json:"product"`
	Name       string  `json:"name"`       // product name at order time
	OfferPrice float64 `json:"offerPrice"` // unit price at order time
	Quantity   int     `json:"quantity"`
}
