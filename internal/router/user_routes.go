package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/handler"
	"github.com/iliyamo/hotel-booking/internal/middleware"
	"github.com/iliyamo/hotel-booking/internal/model"
)

// RegisterAuth registers registration and session endpoints.  Register,
// login and logout live under /v1/auth and need no session; /v1/users/me
// requires a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/users/me", a.Me)
}

// RegisterUsers registers the user management endpoints.  Updates are
// self-or-admin (enforced in the handler); deletion is admin only.  The
// upstream service shipped these routes without any gate — that was a
// bug, not a contract.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string) {
	g := e.Group("/v1/users", middleware.JWTAuth(jwtSecret))
	g.PUT("/:id", u.Update)
	g.DELETE("/:id", u.Delete, middleware.RequireRole(model.RoleAdmin))
}
