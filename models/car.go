package models

import "time"

type CarCategory string

const (
	CarCategoryEconomy CarCategory = "economy"
	CarCategoryLuxury  CarCategory = "luxury"
)

type Car struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	Name               string      `gorm:"not null" json:"name"`
	Category           CarCategory `gorm:"type:VARCHAR(20);index" json:"category"`
	Image              string      `json:"image"`
	PricePerDay        float64     `gorm:"not null" json:"price_per_day"`
	Seats              int         `json:"seats"`
	Transmission       string      `json:"transmission"`
	AvailabilityStatus bool        `gorm:"default:true" json:"availability_status"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
