package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/repository"
)

// PublicHandler exposes the unauthenticated browse surface: paginated
// hotel search and listing detail.  Only Available hotels are visible.
type PublicHandler struct {
	Hotels HotelStore
}

func NewPublicHandler(hotels HotelStore) *PublicHandler {
	return &PublicHandler{Hotels: hotels}
}

const defaultPageSize = 20

// paginationPart mirrors the search response shape the frontend expects.
type paginationPart struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

// SearchHotels handles GET /v1/hotels with optional country, type, name,
// minStars, page and pageSize query parameters.
func (h *PublicHandler) SearchHotels(c echo.Context) error {
	q := repository.HotelSearchQuery{
		Country:  c.QueryParam("country"),
		Type:     c.QueryParam("type"),
		Name:     c.QueryParam("name"),
		Page:     1,
		PageSize: defaultPageSize,
	}
	if n, err := strconv.Atoi(c.QueryParam("minStars")); err == nil && n >= 1 && n <= 5 {
		q.MinStars = n
	}
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && n > 0 && n <= 100 {
		q.PageSize = n
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Hotels.Search(ctx, q)
	if err != nil {
		c.Logger().Errorf("search hotels: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	if items == nil {
		items = []*model.Hotel{}
	}
	pages := total / int64(q.PageSize)
	if total%int64(q.PageSize) != 0 {
		pages++
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":       items,
		"pagination": paginationPart{Total: total, Page: q.Page, Pages: pages},
	})
}

// GetHotel handles GET /v1/hotels/:id.  Listings that are not Available
// answer 404 so unverified hotels stay invisible to guests.
func (h *PublicHandler) GetHotel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid hotel id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	hotel, err := h.Hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Hotel not found."})
		}
		c.Logger().Errorf("get hotel: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	if hotel.Status != model.HotelAvailable {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Hotel not found."})
	}
	return c.JSON(http.StatusOK, hotel)
}
