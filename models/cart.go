package models

import "time"

// Cart holds one customer's rental cart. The line-item list is serialized
// wholesale into ItemsJSON; the cart package owns its shape and keeps the
// derived fields consistent.
type Cart struct {
	CartID     uint      `gorm:"primaryKey" json:"cart_id"`
	CustomerID uint      `gorm:"uniqueIndex" json:"customer_id"` // Enforces ONE cart per customer
	ItemsJSON  []byte    `gorm:"type:jsonb" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
