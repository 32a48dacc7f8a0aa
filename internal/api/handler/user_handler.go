package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

// UserHandler serves the account administration screens.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=64"`
	FullName    string   `json:"full_name" validate:"required"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Role        string   `json:"role" validate:"required,role"`
	Permissions []string `json:"permissions" validate:"dive,permission"`
	IsActive    *bool    `json:"is_active"`
}

type updateUserRequest struct {
	FullName    *string   `json:"full_name" validate:"omitempty,min=1"`
	Role        *string   `json:"role" validate:"omitempty,role"`
	Permissions *[]string `json:"permissions" validate:"omitempty,dive,permission"`
	IsActive    *bool     `json:"is_active"`
	Password    *string   `json:"password" validate:"omitempty,min=8"`
}

type userListResponse struct {
	Items []*domain.User `json:"items"`
}

// List returns every account.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Items: users})
}

// Create adds a login account.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	user, err := h.service.Create(c.Request().Context(), actor(c), ports.CreateUserInput{
		Username:    req.Username,
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Permissions: req.Permissions,
		IsActive:    active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update changes an account. The user's open sessions are revoked.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), actor(c), c.Param("id"), ports.UpdateUserInput{
		FullName:    req.FullName,
		Role:        req.Role,
		Permissions: req.Permissions,
		IsActive:    req.IsActive,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
