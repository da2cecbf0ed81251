package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/handler"
	"github.com/iliyamo/hotel-booking/internal/middleware"
	"github.com/iliyamo/hotel-booking/internal/model"
)

// RegisterManager registers the hotel management surface under
// /v1/my-hotels.  All routes require a valid JWT and the hotel_manager
// role; admins pass too so support can edit listings.
func RegisterManager(e *echo.Echo, h *handler.HotelHandler, jwtSecret string) {
	g := e.Group(
		"/v1/my-hotels",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleHotelManager, model.RoleAdmin),
	)
	g.POST("", h.Create)
	g.GET("", h.ListMine)
	g.GET("/:id", h.GetMine)
	g.PUT("/:id", h.UpdateMine)
}

// RegisterAdmin registers privileged verification endpoints.  The handler
// re-resolves the acting user from the identity store, so no RequireRole
// middleware sits in front: a token with a stale admin claim is not
// enough.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin", middleware.JWTAuth(jwtSecret))
	g.PUT("/verify-hotel/:hotelId/status", a.VerifyHotelStatus)
}

// RegisterBookings registers the booking endpoints.  Any authenticated
// account may book.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	g.POST("/bookings", b.Create)
	g.GET("/my-bookings", b.ListMine)
	g.PUT("/bookings/:id/cancel", b.Cancel)
}
