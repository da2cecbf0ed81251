package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/repository"
	"github.com/iliyamo/hotel-booking/internal/validate"
)

// HotelHandler implements the manager surface: listing hotels and editing
// one's own listings.  New and edited listings stay Under Maintenance
// until an admin verifies them.
type HotelHandler struct {
	Users  UserStore
	Hotels HotelStore
}

func NewHotelHandler(users UserStore, hotels HotelStore) *HotelHandler {
	return &HotelHandler{Users: users, Hotels: hotels}
}

type roomTypeReq struct {
	Type           string   `json:"type"`
	Capacity       int      `json:"capacity"`
	PricePerNight  float64  `json:"pricePerNight"`
	ImageURLs      []string `json:"imageUrls"`
	AvailableRooms int      `json:"availableRooms"`
	Description    string   `json:"description"`
}

type hotelReq struct {
	Name          string         `json:"name"`
	Country       string         `json:"country"`
	Location      model.GeoPoint `json:"location"`
	Description   string         `json:"description"`
	Type          string         `json:"type"`
	MaxAdultCount int            `json:"maxAdultCount"`
	MaxChildCount int            `json:"maxChildCount"`
	Facilities    []string       `json:"facilities"`
	ImageURLs     []string       `json:"imageUrls"`
	StarRating    int            `json:"starRating"`
	RoomTypes     []roomTypeReq  `json:"roomTypes"`
}

func (r hotelReq) rules() []validate.Rule {
	return []validate.Rule{
		{Field: "name", Message: "Name is required",
			Valid: func() bool { return validate.NonEmpty(r.Name) }},
		{Field: "country", Message: "Country is required",
			Valid: func() bool { return validate.NonEmpty(r.Country) }},
		{Field: "description", Message: "Description is required",
			Valid: func() bool { return validate.NonEmpty(r.Description) }},
		{Field: "type", Message: "Type is required",
			Valid: func() bool { return validate.NonEmpty(r.Type) }},
		{Field: "starRating", Message: "Star rating must be between 1 and 5",
			Valid: func() bool { return validate.InRange(r.StarRating, 1, 5) }},
		{Field: "maxAdultCount", Message: "Max adult count must be at least 1",
			Valid: func() bool { return r.MaxAdultCount >= 1 }},
		{Field: "maxChildCount", Message: "Max child count cannot be negative",
			Valid: func() bool { return r.MaxChildCount >= 0 }},
		{Field: "roomTypes", Message: "At least one room type is required",
			Valid: func() bool { return len(r.RoomTypes) > 0 }},
		{Field: "roomTypes", Message: "Each room type needs a type, positive capacity, price and room count",
			When: func() bool { return len(r.RoomTypes) > 0 },
			Valid: func() bool {
				for _, rt := range r.RoomTypes {
					if !validate.NonEmpty(rt.Type) || rt.Capacity <= 0 ||
						rt.PricePerNight <= 0 || rt.AvailableRooms < 0 {
						return false
					}
				}
				return true
			}},
	}
}

func (r hotelReq) apply(h *model.Hotel) {
	h.Name = strings.TrimSpace(r.Name)
	h.Country = strings.TrimSpace(r.Country)
	h.Location = r.Location
	h.Description = strings.TrimSpace(r.Description)
	h.Type = strings.TrimSpace(r.Type)
	h.MaxAdultCount = r.MaxAdultCount
	h.MaxChildCount = r.MaxChildCount
	h.Facilities = r.Facilities
	h.ImageURLs = r.ImageURLs
	h.StarRating = r.StarRating
	h.RoomTypes = h.RoomTypes[:0]
	for _, rt := range r.RoomTypes {
		h.RoomTypes = append(h.RoomTypes, model.RoomType{
			Type:           strings.TrimSpace(rt.Type),
			Capacity:       rt.Capacity,
			PricePerNight:  rt.PricePerNight,
			ImageURLs:      rt.ImageURLs,
			AvailableRooms: rt.AvailableRooms,
			Description:    strings.TrimSpace(rt.Description),
		})
	}
}

// Create handles POST /v1/my-hotels.  The owning-user reference must
// resolve to an existing account at creation time.
func (h *HotelHandler) Create(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON input"})
	}
	if errs := validate.Run(req.rules()...); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": errs})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		c.Logger().Errorf("create hotel: query owner: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	hotel := &model.Hotel{UserID: ownerID, Status: model.HotelUnderMaintenance}
	req.apply(hotel)
	if err := h.Hotels.Create(ctx, hotel); err != nil {
		c.Logger().Errorf("create hotel: persist: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Hotel created", "hotel": hotel})
}

// ListMine handles GET /v1/my-hotels.
func (h *HotelHandler) ListMine(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Hotels.ListByOwner(ctx, ownerID)
	if err != nil {
		c.Logger().Errorf("list hotels: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, echo.Map{"hotels": items})
}

// GetMine handles GET /v1/my-hotels/:id.
func (h *HotelHandler) GetMine(c echo.Context) error {
	hotel, errResp := h.ownHotel(c)
	if errResp != nil {
		return errResp(c)
	}
	return c.JSON(http.StatusOK, hotel)
}

// UpdateMine handles PUT /v1/my-hotels/:id.  Availability is not editable
// here; a verified listing that changes drops back to Under Maintenance
// for re-review.
func (h *HotelHandler) UpdateMine(c echo.Context) error {
	hotel, errResp := h.ownHotel(c)
	if errResp != nil {
		return errResp(c)
	}
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON input"})
	}
	if errs := validate.Run(req.rules()...); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": errs})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	req.apply(hotel)
	// Edited Available listings go back for re-review.  The reset rides
	// the same transactional write as the field changes.
	if hotel.Status == model.HotelAvailable {
		hotel.Status = model.HotelUnderMaintenance
	}
	if err := h.Hotels.Update(ctx, hotel); err != nil {
		c.Logger().Errorf("update hotel: persist: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Hotel updated", "hotel": hotel})
}

// ownHotel resolves the :id parameter to a hotel owned by the caller.
// It returns a non-nil response func on failure.
func (h *HotelHandler) ownHotel(c echo.Context) (*model.Hotel, func(echo.Context) error) {
	ownerID, err := getUserID(c)
	if err != nil {
		return nil, func(c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid hotel id"})
		}
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	hotel, err := h.Hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, func(c echo.Context) error {
				return c.JSON(http.StatusNotFound, echo.Map{"message": "Hotel not found."})
			}
		}
		c.Logger().Errorf("load hotel: %v", err)
		return nil, func(c echo.Context) error {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
		}
	}
	role, _ := c.Get("role").(string)
	if hotel.UserID != ownerID && role != model.RoleAdmin {
		return nil, func(c echo.Context) error {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
	}
	return hotel, nil
}
