// Package queue defines message payloads exchanged over the message broker.
package queue

// HotelVerifiedEvent is published when an admin switches a hotel listing
// to Available.  Downstream consumers can notify the owning manager or
// refresh search indexes without querying the primary database.
type HotelVerifiedEvent struct {
	HotelID    uint64 `json:"hotel_id"`
	HotelName  string `json:"hotel_name"`
	OwnerID    uint64 `json:"owner_id"`
	AdminID    uint64 `json:"admin_id"`
	Status     string `json:"status"`
	VerifiedAt string `json:"verified_at"`
}

// BookingCreatedEvent is published when a user places a new booking.  It
// carries enough information for logging and the payment flow to pick the
// record up.
type BookingCreatedEvent struct {
	BookingID uint64  `json:"booking_id"`
	UserID    uint64  `json:"user_id"`
	HotelID   uint64  `json:"hotel_id"`
	HotelName string  `json:"hotel_name"`
	RoomType  string  `json:"room_type"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	TotalCost float64 `json:"total_cost"`
	CreatedAt string  `json:"created_at"`
}
