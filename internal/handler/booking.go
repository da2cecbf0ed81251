package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/queue"
	"github.com/iliyamo/hotel-booking/internal/repository"
	queue_publisher "github.com/iliyamo/hotel-booking/internal/service"
	"github.com/iliyamo/hotel-booking/internal/validate"
)

// BookingHandler implements booking creation, listing and cancellation.
type BookingHandler struct {
	Users    UserStore
	Hotels   HotelStore
	Bookings BookingStore
}

func NewBookingHandler(users UserStore, hotels HotelStore, bookings BookingStore) *BookingHandler {
	return &BookingHandler{Users: users, Hotels: hotels, Bookings: bookings}
}

type createBookingReq struct {
	HotelID    uint64    `json:"hotelId"`
	RoomTypeID uint64    `json:"roomTypeId"`
	AdultCount int       `json:"adultCount"`
	ChildCount int       `json:"childCount"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
}

// Create handles POST /v1/bookings.  Check-out must be strictly after
// check-in and the party must fit the room type's capacity.  Total cost
// is computed from the nightly price, never taken from the client.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON input"})
	}

	if errs := validate.Run(
		validate.Rule{Field: "hotelId", Message: "Hotel is required",
			Valid: func() bool { return req.HotelID != 0 }},
		validate.Rule{Field: "roomTypeId", Message: "Room type is required",
			Valid: func() bool { return req.RoomTypeID != 0 }},
		validate.Rule{Field: "adultCount", Message: "At least one adult is required",
			Valid: func() bool { return req.AdultCount >= 1 }},
		validate.Rule{Field: "childCount", Message: "Child count cannot be negative",
			Valid: func() bool { return req.ChildCount >= 0 }},
		validate.Rule{Field: "checkIn", Message: "Check-in date is required",
			Valid: func() bool { return !req.CheckIn.IsZero() }},
		validate.Rule{Field: "checkOut", Message: "Check-out must be after check-in",
			When:  func() bool { return !req.CheckIn.IsZero() },
			Valid: func() bool { return req.CheckOut.After(req.CheckIn) }},
	); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": errs})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	// The booking's user reference must resolve at creation time.
	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		c.Logger().Errorf("create booking: query user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	hotel, err := h.Hotels.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Hotel not found."})
		}
		c.Logger().Errorf("create booking: query hotel: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	if hotel.Status != model.HotelAvailable {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Hotel is not available for booking"})
	}

	rt, err := h.Hotels.GetRoomType(ctx, hotel.ID, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Room type not found."})
		}
		c.Logger().Errorf("create booking: query room type: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	if req.AdultCount+req.ChildCount > rt.Capacity {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Party exceeds room capacity"})
	}

	b := &model.Booking{
		UserID:     userID,
		HotelID:    hotel.ID,
		RoomTypeID: rt.ID,
		AdultCount: req.AdultCount,
		ChildCount: req.ChildCount,
		CheckIn:    req.CheckIn.UTC(),
		CheckOut:   req.CheckOut.UTC(),
		Status:     model.BookingPending,
	}
	b.TotalCost = float64(b.Nights()) * rt.PricePerNight

	if err := h.Bookings.Create(ctx, b); err != nil {
		c.Logger().Errorf("create booking: persist: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	// Best effort: the payment flow consumes this, a broker outage must
	// not fail the request.
	_ = queue_publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		BookingID: b.ID,
		UserID:    b.UserID,
		HotelID:   hotel.ID,
		HotelName: hotel.Name,
		RoomType:  rt.Type,
		CheckIn:   b.CheckIn.Format("2006-01-02"),
		CheckOut:  b.CheckOut.Format("2006-01-02"),
		TotalCost: b.TotalCost,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "Booking created", "booking": b})
}

// ListMine handles GET /v1/my-bookings.
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		c.Logger().Errorf("list bookings: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": items})
}

// Cancel handles PUT /v1/bookings/:id/cancel.  Only the booking's owner
// may cancel, and only while the booking is pending or confirmed.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid booking id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found."})
		}
		c.Logger().Errorf("cancel booking: query: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	if b.UserID != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	if b.Status != model.BookingPending && b.Status != model.BookingConfirmed {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Booking can no longer be canceled"})
	}

	b.Status = model.BookingCanceled
	if err := h.Bookings.UpdateStatus(ctx, b.ID, b.Status); err != nil {
		c.Logger().Errorf("cancel booking: persist: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Booking canceled", "booking": b})
}
