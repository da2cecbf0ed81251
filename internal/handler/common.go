package handler // handler defines http handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/repository"
)

// Store interfaces keep handlers decoupled from the SQL layer so tests can
// exercise the request logic against in-memory fakes.  The repository
// types satisfy them.

// UserStore is the identity store collaborator.
type UserStore interface {
	Create(ctx context.Context, u *model.User, password string, cost int) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uint64) error
}

// HotelStore is the hotel store collaborator.
type HotelStore interface {
	Create(ctx context.Context, h *model.Hotel) error
	GetByID(ctx context.Context, id uint64) (*model.Hotel, error)
	ListByOwner(ctx context.Context, userID uint64) ([]*model.Hotel, error)
	Update(ctx context.Context, h *model.Hotel) error
	UpdateStatus(ctx context.Context, id uint64, status string) error
	Search(ctx context.Context, q repository.HotelSearchQuery) ([]*model.Hotel, int64, error)
	GetRoomType(ctx context.Context, hotelID, roomTypeID uint64) (*model.RoomType, error)
}

// BookingStore is the booking store collaborator.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
}

// getUserID extracts the user_id placed in context by the auth middleware
// and converts it to uint64.  JWT numeric claims decode as float64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// reqCtx bounds a handler's storage calls, matching the per-request
// suspension points of the upstream design.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
