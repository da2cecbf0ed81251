package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/repository"
	"github.com/iliyamo/hotel-booking/internal/utils"
	"github.com/iliyamo/hotel-booking/internal/validate"
)

// UserHandler implements user management: self-service profile updates,
// admin edits and admin-only deletion.
type UserHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewUserHandler(cfg config.Config, users UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

// updateUserReq uses pointers so any subset of fields may be supplied.
type updateUserReq struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Status    *string `json:"status"`
}

// Update handles PUT /v1/users/:id.  A user may edit their own profile;
// admins may edit anyone.  The role and status fields are only honored
// for admins so a regular user cannot grant themselves privileges.
func (h *UserHandler) Update(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user id"})
	}

	actorRole, _ := c.Get("role").(string)
	isAdmin := actorRole == model.RoleAdmin
	if actorID != targetID && !isAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}

	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON input"})
	}

	if errs := validate.Run(
		validate.Rule{Field: "firstName", Message: "First Name is required",
			When:  func() bool { return req.FirstName != nil },
			Valid: func() bool { return validate.NonEmpty(*req.FirstName) }},
		validate.Rule{Field: "lastName", Message: "Last Name is required",
			When:  func() bool { return req.LastName != nil },
			Valid: func() bool { return validate.NonEmpty(*req.LastName) }},
		validate.Rule{Field: "phone", Message: "Not valid phone (VN-vn)!",
			When:  func() bool { return req.Phone != nil },
			Valid: func() bool { return validate.IsVNMobile(*req.Phone) }},
		validate.Rule{Field: "email", Message: "Email is required",
			When:  func() bool { return req.Email != nil },
			Valid: func() bool { return validate.IsEmail(*req.Email) }},
		validate.Rule{Field: "password", Message: "Password with 6 or more characters required",
			When:  func() bool { return req.Password != nil },
			Valid: func() bool { return validate.MinLen(*req.Password, 6) }},
		validate.Rule{Field: "role", Message: "Role is invalid",
			When:  func() bool { return req.Role != nil },
			Valid: func() bool { return model.ValidRole(*req.Role) }},
		validate.Rule{Field: "status", Message: "Status is invalid",
			When:  func() bool { return req.Status != nil },
			Valid: func() bool { return model.ValidUserStatus(*req.Status) }},
	); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": errs})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		c.Logger().Errorf("update user: query: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.FirstName != nil {
		u.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		u.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password, h.Cfg.BcryptCost)
		if err != nil {
			c.Logger().Errorf("update user: hash password: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
		}
		u.PasswordHash = hash
	}
	// Privilege fields are silently dropped for non-admin callers.
	if isAdmin {
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.Status != nil {
			u.Status = *req.Status
		}
	}

	if err := h.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "User already exists"})
		}
		c.Logger().Errorf("update user: persist: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /v1/users/:id.  The route is admin-gated by
// middleware; the handler only resolves the target.
func (h *UserHandler) Delete(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		c.Logger().Errorf("delete user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
