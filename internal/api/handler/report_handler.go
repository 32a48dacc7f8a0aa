package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/api/middleware"
	"github.com/carepoint/clinic-admin/internal/core/access"
	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

// ReportHandler serves the reporting endpoints and the dashboard.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type dashboardResponse struct {
	Greeting string         `json:"greeting"`
	Menu     []MenuItem     `json:"menu"`
	Report   *domain.Report `json:"report,omitempty"`
	// Finance is only filled for users who may see money figures.
	Finance *financeTiles `json:"finance,omitempty"`
}

type financeTiles struct {
	ExpenseCents int64 `json:"expense_cents"`
	PaymentCents int64 `json:"payment_cents"`
	NetCents     int64 `json:"net_cents"`
}

// Summary handles GET /v1/reports/summary.
//
// @Summary      Activity summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "RFC 3339 or YYYY-MM-DD, defaults to start of month"
// @Param        to    query     string  false  "RFC 3339 or YYYY-MM-DD, defaults to now"
// @Success      200   {object}  domain.Report
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}
	r, err := h.reports.Summary(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Dashboard handles GET /v1/dashboard for users who can view reports or
// finance. Finance tiles are gated separately.
//
// @Summary      Dashboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	e := middleware.EvaluatorFrom(c)
	gate := access.GateFor(e)

	r, err := h.reports.Summary(c.Request().Context(), time.Time{}, time.Time{})
	if err != nil {
		return err
	}

	resp := dashboardResponse{
		Greeting: greeting(e.User()),
		Menu:     Navigation(gate),
		Report:   access.Gated(gate, access.Permission(domain.PermViewReports), r),
		Finance: access.Gated(gate, access.Permission(domain.PermViewFinance), &financeTiles{
			ExpenseCents: r.ExpenseCents,
			PaymentCents: r.PaymentCents,
			NetCents:     r.NetCents,
		}),
	}
	return c.JSON(http.StatusOK, resp)
}

// DashboardFallback is served instead of a denial to signed-in users who
// can see neither reports nor finance.
func (h *ReportHandler) DashboardFallback(c echo.Context) error {
	e := middleware.EvaluatorFrom(c)
	return c.JSON(http.StatusOK, dashboardResponse{
		Greeting: greeting(e.User()),
		Menu:     Navigation(access.GateFor(e)),
	})
}

func greeting(u *domain.User) string {
	if u == nil {
		return "Welcome"
	}
	name := u.FullName
	if name == "" {
		name = u.Username
	}
	return "Welcome, " + name
}
