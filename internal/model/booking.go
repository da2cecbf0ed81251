package model

import (
	"math"
	"time"
)

// Lifecycle stages of a reservation.  A booking is created pending and is
// moved along by the payment flow; owners may cancel while it is still
// pending or confirmed.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCanceled  = "canceled"
	BookingCompleted = "completed"
)

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCanceled, BookingCompleted:
		return true
	}
	return false
}

// Booking links a user to a specific room type of a hotel for a date
// range.  CheckOut is strictly after CheckIn; TotalCost is computed at
// creation from the nightly price.
type Booking struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"userId"`
	HotelID    uint64    `json:"hotelId"`
	RoomTypeID uint64    `json:"roomTypeId"`
	AdultCount int       `json:"adultCount"`
	ChildCount int       `json:"childCount"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	TotalCost  float64   `json:"totalCost"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Nights returns the number of nights covered by the stay.  Partial days
// count as a full night so a same-week city break is never billed zero.
func (b Booking) Nights() int {
	return int(math.Ceil(b.CheckOut.Sub(b.CheckIn).Hours() / 24))
}
