package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

type StaffHandler struct {
	service ports.StaffService
}

func NewStaffHandler(service ports.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

type createStaffRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Position        string `json:"position" validate:"required"`
	Department      string `json:"department" validate:"required"`
	Phone           string `json:"phone"`
	BaseSalaryCents int64  `json:"base_salary_cents" validate:"gte=0"`
	HiredAt         string `json:"hired_at"`
}

type staffListResponse struct {
	Items []*domain.StaffMember `json:"items"`
}

// Create handles POST /v1/staff.
//
// @Summary      Add a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStaffRequest  true  "Staff details"
// @Success      201   {object}  domain.StaffMember
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	hired, err := parseTime("hired_at", req.HiredAt)
	if err != nil {
		return err
	}

	m, err := h.service.Create(c.Request().Context(), actor(c), ports.CreateStaffInput{
		FullName:        req.FullName,
		Position:        req.Position,
		Department:      req.Department,
		Phone:           req.Phone,
		BaseSalaryCents: req.BaseSalaryCents,
		HiredAt:         hired,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

// Get handles GET /v1/staff/:id.
//
// @Summary      Get a staff member
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Staff ID"
// @Success      200  {object}  domain.StaffMember
// @Failure      404  {object}  map[string]string
// @Router       /v1/staff/{id} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	m, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// List handles GET /v1/staff.
//
// @Summary      List staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        department  query     string  false  "Department"
// @Success      200         {object}  staffListResponse
// @Router       /v1/staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("department"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, staffListResponse{Items: items})
}
