package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecompute_MissingTimestamps(t *testing.T) {
	cases := []struct {
		name    string
		pickup  string
		dropoff string
	}{
		{"both empty", "", ""},
		{"no pickup", "", "2024-01-03T10:00"},
		{"no dropoff", "2024-01-01T10:00", ""},
		{"garbage pickup", "not-a-date", "2024-01-03T10:00"},
		{"garbage dropoff", "2024-01-01T10:00", "soon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := Recompute(LineItem{
				PricePerDay: 75,
				PickupTime:  tc.pickup,
				DropoffTime: tc.dropoff,
				RentalDays:  9,
				TotalPrice:  999,
			})
			assert.Equal(t, 0, item.RentalDays)
			assert.Equal(t, 0.0, item.TotalPrice)
		})
	}
}

func TestRecompute_DropoffNotAfterPickup(t *testing.T) {
	item := Recompute(LineItem{
		PricePerDay: 75,
		PickupTime:  "2024-01-03T10:00",
		DropoffTime: "2024-01-01T10:00",
	})
	assert.Equal(t, 0, item.RentalDays)
	assert.Equal(t, 0.0, item.TotalPrice)

	item = Recompute(LineItem{
		PricePerDay: 75,
		PickupTime:  "2024-01-01T10:00",
		DropoffTime: "2024-01-01T10:00",
	})
	assert.Equal(t, 0, item.RentalDays)
	assert.Equal(t, 0.0, item.TotalPrice)
}

func TestRecompute_WholeDays(t *testing.T) {
	item := Recompute(LineItem{
		PricePerDay: 75,
		PickupTime:  "2024-01-01T10:00",
		DropoffTime: "2024-01-03T10:00",
	})
	assert.Equal(t, 2, item.RentalDays)
	assert.Equal(t, 150.0, item.TotalPrice)
}

func TestRecompute_PartialDayRoundsUp(t *testing.T) {
	item := Recompute(LineItem{
		PricePerDay: 50,
		PickupTime:  "2024-01-01T10:00",
		DropoffTime: "2024-01-02T11:00",
	})
	assert.Equal(t, 2, item.RentalDays)
	assert.Equal(t, 100.0, item.TotalPrice)

	item = Recompute(LineItem{
		PricePerDay: 50,
		PickupTime:  "2024-01-01T10:00",
		DropoffTime: "2024-01-01T10:01",
	})
	assert.Equal(t, 1, item.RentalDays)
	assert.Equal(t, 50.0, item.TotalPrice)
}

func TestParseTime_Layouts(t *testing.T) {
	for _, value := range []string{
		"2024-01-01T10:00",
		"2024-01-01T10:00:30",
		"2024-01-01T10:00:00Z",
	} {
		_, err := ParseTime(value)
		require.NoError(t, err, value)
	}

	_, err := ParseTime("")
	require.Error(t, err)
}

func TestComplete(t *testing.T) {
	item := LineItem{
		PickupLocation:  "Airport",
		DropoffLocation: "Downtown",
		PickupTime:      "2024-01-01T10:00",
		DropoffTime:     "2024-01-03T10:00",
	}
	assert.True(t, item.Complete())

	item.DropoffLocation = ""
	assert.False(t, item.Complete())
}
