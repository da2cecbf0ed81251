package model

import "time"

// Operational availability of a hotel listing.  New listings start in
// HotelUnderMaintenance until an admin verifies them; the legacy literal
// "ON" that briefly appeared as an availability value is not part of the
// vocabulary.
const (
	HotelAvailable        = "Available"
	HotelBooked           = "Booked"
	HotelUnderMaintenance = "Under Maintenance"
)

// ValidHotelStatus reports whether s is one of the known hotel statuses.
func ValidHotelStatus(s string) bool {
	return s == HotelAvailable || s == HotelBooked || s == HotelUnderMaintenance
}

// GeoPoint is a coordinate pair stored alongside the hotel row.
// Longitude first matches the GeoJSON ordering used by the frontend map.
type GeoPoint struct {
	Longitude float64 `json:"lng"`
	Latitude  float64 `json:"lat"`
}

// RoomType is an ordered sub-record of a hotel describing one bookable
// room category (Single, Double, Suite, ...).  Position preserves the
// order the manager listed them in.
type RoomType struct {
	ID             uint64   `json:"id"`
	HotelID        uint64   `json:"hotelId"`
	Type           string   `json:"type"`
	Capacity       int      `json:"capacity"`
	PricePerNight  float64  `json:"pricePerNight"`
	ImageURLs      []string `json:"imageUrls"`
	AvailableRooms int      `json:"availableRooms"`
	Description    string   `json:"description,omitempty"`
	Position       int      `json:"-"`
}

// Hotel represents a hotel listing owned by a hotel_manager account.
// Facilities and ImageURLs are stored as JSON columns; RoomTypes live in
// the room_types table and are loaded alongside the hotel.
type Hotel struct {
	ID            uint64     `json:"id"`
	UserID        uint64     `json:"userId"`
	Name          string     `json:"name"`
	Country       string     `json:"country"`
	Location      GeoPoint   `json:"location"`
	Description   string     `json:"description"`
	RoomTypes     []RoomType `json:"roomTypes"`
	Type          string     `json:"type"` // Hotel, Motel, Resort, ...
	MaxAdultCount int        `json:"maxAdultCount"`
	MaxChildCount int        `json:"maxChildCount"`
	Facilities    []string   `json:"facilities"`
	ImageURLs     []string   `json:"imageUrls"`
	StarRating    int        `json:"starRating"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
