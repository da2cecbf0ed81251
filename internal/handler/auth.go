package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/repository"
	"github.com/iliyamo/hotel-booking/internal/utils"
	"github.com/iliyamo/hotel-booking/internal/validate"
)

// AuthHandler bundles dependencies for registration and session endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type registerReq struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register validates the submitted fields, creates the identity record and
// immediately issues the session cookie.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON input"})
	}

	if errs := validate.Run(
		validate.Rule{Field: "firstName", Message: "First Name is required",
			Valid: func() bool { return validate.NonEmpty(req.FirstName) }},
		validate.Rule{Field: "lastName", Message: "Last Name is required",
			Valid: func() bool { return validate.NonEmpty(req.LastName) }},
		validate.Rule{Field: "phone", Message: "Số điện thoại không hợp lệ!",
			Valid: func() bool { return validate.IsVNMobile(req.Phone) }},
		validate.Rule{Field: "email", Message: "Email is required",
			Valid: func() bool { return validate.IsEmail(req.Email) }},
		validate.Rule{Field: "password", Message: "Password with 6 or more characters required",
			Valid: func() bool { return validate.MinLen(req.Password, 6) }},
	); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": errs})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u := &model.User{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
	}
	if err := h.Users.Create(ctx, u, req.Password, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "User already exists"})
		}
		c.Logger().Errorf("register: create user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	tok, err := utils.NewAuthToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.TokenTTLHours)
	if err != nil {
		c.Logger().Errorf("register: issue token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	c.SetCookie(utils.AuthCookie(tok, h.Cfg.IsProd()))

	return c.JSON(http.StatusOK, echo.Map{"message": "User registered OK", "user": u})
}

// Login verifies email and password and issues a fresh session cookie.
// Unknown email and wrong password answer identically.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON input"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		c.Logger().Errorf("login: query user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}
	if u.Status == model.UserBanned {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Account is banned"})
	}

	tok, err := utils.NewAuthToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.TokenTTLHours)
	if err != nil {
		c.Logger().Errorf("login: issue token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	c.SetCookie(utils.AuthCookie(tok, h.Cfg.IsProd()))

	return c.JSON(http.StatusOK, echo.Map{"message": "Logged in", "user": u})
}

// Logout clears the session cookie.  The token itself stays valid until
// expiry; verification is stateless.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(utils.ClearAuthCookie(h.Cfg.IsProd()))
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

// Me returns the full identity record of the acting user.  The store
// lookup happens here, not in the auth gate.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Matches the upstream surface: a vanished account answers 400.
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User not found"})
		}
		c.Logger().Errorf("me: query user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, u)
}
