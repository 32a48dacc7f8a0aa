package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type settingsRequest struct {
	ClinicName string `json:"clinic_name" validate:"required"`
	Currency   string `json:"currency" validate:"required,len=3"`
	Timezone   string `json:"timezone" validate:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

// Get handles GET /v1/settings.
//
// @Summary      Clinic settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Settings
// @Failure      403  {object}  map[string]string
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Update handles PUT /v1/settings.
//
// @Summary      Replace clinic settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      settingsRequest  true  "Settings"
// @Success      200   {object}  domain.Settings
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	s, err := h.service.Update(c.Request().Context(), actor(c), domain.Settings{
		ClinicName: req.ClinicName,
		Currency:   req.Currency,
		Timezone:   req.Timezone,
		Address:    req.Address,
		Phone:      req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}
