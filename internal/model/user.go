package model

import "time"

// Roles assignable to a user account.  Regular visitors register as
// RoleUser; RoleHotelManager accounts list and manage hotels; RoleAdmin
// accounts verify hotel listings and manage users.
const (
	RoleUser         = "user"
	RoleAdmin        = "admin"
	RoleHotelManager = "hotel_manager"
)

// Account statuses.  Banned accounts keep their rows but cannot log in.
const (
	UserActive   = "active"
	UserInactive = "inactive"
	UserBanned   = "banned"
)

// ValidRole reports whether s is one of the known role names.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin || s == RoleHotelManager
}

// ValidUserStatus reports whether s is one of the known account statuses.
func ValidUserStatus(s string) bool {
	return s == UserActive || s == UserInactive || s == UserBanned
}

// User represents an application user record as stored in the `users`
// table.  PasswordHash is excluded from JSON so handlers can return the
// record directly without leaking the credential.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
