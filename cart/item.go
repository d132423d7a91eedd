package cart

import (
	"math"
	"time"
)

// TimeLayout is the format rental timestamps arrive in from the storefront
// date pickers (HTML datetime-local, no zone or seconds).
const TimeLayout = "2006-01-02T15:04"

var timeLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// LineItem is one rentable car a customer intends to rent, with its own
// pickup/dropoff details. RentalDays and TotalPrice are derived; Recompute
// keeps them consistent with the timestamps and the per-day rate.
type LineItem struct {
	ID              string  `json:"id"`
	ProductName     string  `json:"product_name"`
	Image           string  `json:"image"`
	PricePerDay     float64 `json:"price_per_day"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	PickupTime      string  `json:"pickup_time"`
	DropoffTime     string  `json:"dropoff_time"`
	RentalDays      int     `json:"rental_days"`
	TotalPrice      float64 `json:"total_price"`
}

// Complete reports whether every field checkout requires is filled in.
func (item LineItem) Complete() bool {
	return item.PickupLocation != "" &&
		item.DropoffLocation != "" &&
		item.PickupTime != "" &&
		item.DropoffTime != ""
}

// Recompute returns the item with RentalDays and TotalPrice derived from its
// current timestamps and rate. Missing, unparseable or out-of-order
// timestamps zero both fields. Rental days round up: any started day counts
// as a full day.
func Recompute(item LineItem) LineItem {
	item.RentalDays = 0
	item.TotalPrice = 0

	pickup, err := ParseTime(item.PickupTime)
	if err != nil {
		return item
	}
	dropoff, err := ParseTime(item.DropoffTime)
	if err != nil {
		return item
	}

	diff := dropoff.Sub(pickup)
	if diff <= 0 {
		return item
	}

	item.RentalDays = int(math.Ceil(diff.Hours() / 24))
	item.TotalPrice = float64(item.RentalDays) * item.PricePerDay
	return item
}

// ParseTime parses a storefront timestamp string.
func ParseTime(value string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
