package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(n int) time.Time {
	return time.Date(2026, time.September, n, 0, 0, 0, 0, time.UTC)
}

func TestBookingOverlaps(t *testing.T) {
	b := Booking{CheckInDate: d(10), CheckOutDate: d(15)}

	assert.True(t, b.Overlaps(d(12), d(14)))
	assert.True(t, b.Overlaps(d(8), d(11)))
	assert.True(t, b.Overlaps(d(14), d(20)))
	assert.True(t, b.Overlaps(d(8), d(20)))

	// Half-open ranges: checkout day equals the next check-in day.
	assert.False(t, b.Overlaps(d(15), d(18)))
	assert.False(t, b.Overlaps(d(5), d(10)))
	assert.False(t, b.Overlaps(d(20), d(25)))
}

func TestBookingInputValidate(t *testing.T) {
	assert.NoError(t, BookingInput{PropertyID: "p", CheckInDate: d(10), CheckOutDate: d(12)}.Validate())
	assert.Error(t, BookingInput{PropertyID: "p", CheckInDate: d(12), CheckOutDate: d(10)}.Validate())
	assert.Error(t, BookingInput{PropertyID: "p", CheckInDate: d(10), CheckOutDate: d(10)}.Validate())
}
