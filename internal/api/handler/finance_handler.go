package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

type expenseRequest struct {
	Category    string `json:"category" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"gt=0"`
	Description string `json:"description"`
	SpentAt     string `json:"spent_at"`
}

type paymentRequest struct {
	PatientID   string `json:"patient_id" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"gt=0"`
	Method      string `json:"method" validate:"required,oneof=cash card insurance transfer"`
	Reference   string `json:"reference"`
}

type expenseListResponse struct {
	Items      []*domain.Expense `json:"items"`
	TotalCents int64             `json:"total_cents"`
}

type paymentListResponse struct {
	Items      []*domain.Payment `json:"items"`
	TotalCents int64             `json:"total_cents"`
}

// LogExpense handles POST /v1/expenses.
//
// @Summary      Log an expense
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      expenseRequest  true  "Expense"
// @Success      201   {object}  domain.Expense
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/expenses [post]
func (h *FinanceHandler) LogExpense(c echo.Context) error {
	var req expenseRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	spent, err := parseTime("spent_at", req.SpentAt)
	if err != nil {
		return err
	}

	e, err := h.service.LogExpense(c.Request().Context(), actor(c), ports.LogExpenseInput{
		Category:    req.Category,
		AmountCents: req.AmountCents,
		Description: req.Description,
		SpentAt:     spent,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

// ListExpenses handles GET /v1/expenses.
//
// @Summary      List expenses
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Category"
// @Param        from      query     string  false  "RFC 3339 or YYYY-MM-DD"
// @Param        to        query     string  false  "RFC 3339 or YYYY-MM-DD"
// @Success      200       {object}  expenseListResponse
// @Failure      400       {object}  map[string]string
// @Router       /v1/expenses [get]
func (h *FinanceHandler) ListExpenses(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}
	items, err := h.service.ListExpenses(c.Request().Context(), ports.ExpenseFilter{
		Category: c.QueryParam("category"),
		From:     from,
		To:       to,
	})
	if err != nil {
		return err
	}

	resp := expenseListResponse{Items: items}
	for _, e := range items {
		resp.TotalCents += e.AmountCents
	}
	return c.JSON(http.StatusOK, resp)
}

// RecordPayment handles POST /v1/payments.
//
// @Summary      Record a patient payment
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/payments [post]
func (h *FinanceHandler) RecordPayment(c echo.Context) error {
	var req paymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	p, err := h.service.RecordPayment(c.Request().Context(), actor(c), ports.RecordPaymentInput{
		PatientID:   req.PatientID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Reference:   req.Reference,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// ListPayments handles GET /v1/payments.
//
// @Summary      List payments
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        patient_id  query     string  false  "Patient ID"
// @Success      200         {object}  paymentListResponse
// @Router       /v1/payments [get]
func (h *FinanceHandler) ListPayments(c echo.Context) error {
	items, err := h.service.ListPayments(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		return err
	}

	resp := paymentListResponse{Items: items}
	for _, p := range items {
		resp.TotalCents += p.AmountCents
	}
	return c.JSON(http.StatusOK, resp)
}
