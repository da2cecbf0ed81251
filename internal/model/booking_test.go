package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	in := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	b := Booking{CheckIn: in, CheckOut: in.AddDate(0, 0, 3)}
	assert.Equal(t, 3, b.Nights())

	// Partial days round up so a late checkout still bills the night.
	b = Booking{CheckIn: in, CheckOut: in.AddDate(0, 0, 2).Add(6 * time.Hour)}
	assert.Equal(t, 3, b.Nights())

	b = Booking{CheckIn: in, CheckOut: in.AddDate(0, 0, 1)}
	assert.Equal(t, 1, b.Nights())
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{BookingPending, BookingConfirmed, BookingCanceled, BookingCompleted} {
		assert.True(t, ValidBookingStatus(s), s)
	}
	assert.False(t, ValidBookingStatus("held"))
}
