package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/hotel-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems probe this endpoint.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated hotel browse endpoints.
// Only Available (admin-verified) listings are returned, so the routes
// apply no JWT or role middleware.  The caller passes the shared cache
// and rate-limit middleware so the scraping-prone search surface is the
// one place they bite.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/hotels", p.SearchHotels)
	g.GET("/hotels/:id", p.GetHotel)
}
