package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

type PayrollHandler struct {
	service ports.PayrollService
}

func NewPayrollHandler(service ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

type adjustmentRequest struct {
	StaffID     string `json:"staff_id" validate:"required"`
	Kind        string `json:"kind" validate:"required,oneof=bonus deduction"`
	AmountCents int64  `json:"amount_cents" validate:"gt=0"`
	Reason      string `json:"reason" validate:"required"`
	Period      string `json:"period" validate:"required,period"`
}

type adjustmentListResponse struct {
	Items []*domain.PayrollAdjustment `json:"items"`
}

type payrollSummaryResponse struct {
	Period   string               `json:"period"`
	Lines    []domain.PayrollLine `json:"lines"`
	NetCents int64                `json:"net_cents"`
}

// AddAdjustment handles POST /v1/payroll/adjustments.
//
// @Summary      Record a bonus or deduction
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      adjustmentRequest  true  "Adjustment"
// @Success      201   {object}  domain.PayrollAdjustment
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/payroll/adjustments [post]
func (h *PayrollHandler) AddAdjustment(c echo.Context) error {
	var req adjustmentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	a, err := h.service.AddAdjustment(c.Request().Context(), actor(c), ports.AddAdjustmentInput{
		StaffID:     req.StaffID,
		Kind:        req.Kind,
		AmountCents: req.AmountCents,
		Reason:      req.Reason,
		Period:      req.Period,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// ListAdjustments handles GET /v1/payroll/adjustments.
//
// @Summary      List payroll adjustments
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        staff_id  query     string  false  "Staff ID"
// @Param        period    query     string  false  "YYYY-MM"
// @Success      200       {object}  adjustmentListResponse
// @Router       /v1/payroll/adjustments [get]
func (h *PayrollHandler) ListAdjustments(c echo.Context) error {
	items, err := h.service.ListAdjustments(c.Request().Context(), ports.PayrollFilter{
		StaffID: c.QueryParam("staff_id"),
		Period:  c.QueryParam("period"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adjustmentListResponse{Items: items})
}

// Summary handles GET /v1/payroll/summary.
//
// @Summary      Payroll for a period
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  true  "YYYY-MM"
// @Success      200     {object}  payrollSummaryResponse
// @Failure      400     {object}  map[string]string
// @Router       /v1/payroll/summary [get]
func (h *PayrollHandler) Summary(c echo.Context) error {
	period := c.QueryParam("period")
	lines, err := h.service.Summary(c.Request().Context(), period)
	if err != nil {
		return err
	}

	resp := payrollSummaryResponse{Period: period, Lines: lines}
	for _, l := range lines {
		resp.NetCents += l.NetCents
	}
	return c.JSON(http.StatusOK, resp)
}
