package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (rental lifecycle)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting payment confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Payment approved, booking confirmed
	OrderStatusActive    OrderStatus = "active"    // Car picked up, rental in progress
	OrderStatusCompleted OrderStatus = "completed" // Car returned
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before pickup

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderRef        string        `gorm:"uniqueIndex" json:"order_ref"`
	CustomerID      uint          `gorm:"not null;index" json:"customer_id"`
	Customer        Customer      `gorm:"foreignKey:CustomerID" json:"customer"`
	CarName         string        `json:"car_name"`
	PickupLocation  string        `gorm:"not null" json:"pickup_location"`
	DropoffLocation string        `gorm:"not null" json:"dropoff_location"`
	PickupTime      time.Time     `json:"pickup_time"`
	DropoffTime     time.Time     `json:"dropoff_time"`
	RentalDays      int           `json:"rental_days"`
	TotalPrice      float64       `json:"total_price"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt       time.Time     `json:"created_at"`
}
