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
)

// AdminHandler gates privileged mutations.  Unlike the rest of the API,
// the role check here resolves the acting user from the identity store
// rather than trusting the token's role claim, so a demoted admin loses
// the capability as soon as their record changes.
type AdminHandler struct {
	Users  UserStore
	Hotels HotelStore
}

func NewAdminHandler(users UserStore, hotels HotelStore) *AdminHandler {
	return &AdminHandler{Users: users, Hotels: hotels}
}

// VerifyHotelStatus handles PUT /v1/admin/verify-hotel/:hotelId/status.
// It marks a hotel listing Available after review.  Setting the same
// value twice is a no-op, and concurrent admins race with last-write-wins
// semantics; there is no optimistic-concurrency check.
func (h *AdminHandler) VerifyHotelStatus(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid hotel id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	actor, err := h.Users.GetByID(ctx, actorID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		c.Logger().Errorf("verify hotel: query admin: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	if actor == nil || actor.Role != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied. Admins only."})
	}

	hotel, err := h.Hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Hotel not found."})
		}
		c.Logger().Errorf("verify hotel: query hotel: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	hotel.Status = model.HotelAvailable
	if err := h.Hotels.UpdateStatus(ctx, hotel.ID, hotel.Status); err != nil {
		c.Logger().Errorf("verify hotel: persist status: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	// Best effort: a broker outage must not fail the verification.
	_ = queue_publisher.PublishHotelVerified(ctx, queue.HotelVerifiedEvent{
		HotelID:    hotel.ID,
		HotelName:  hotel.Name,
		OwnerID:    hotel.UserID,
		AdminID:    actor.ID,
		Status:     hotel.Status,
		VerifiedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Hotel status updated to Available",
		"hotel":   hotel,
	})
}
