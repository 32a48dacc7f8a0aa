package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/api/metrics"
	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

// PatientHandler handles HTTP requests for admissions.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type admitPatientRequest struct {
	FullName          string `json:"full_name" validate:"required"`
	DateOfBirth       string `json:"date_of_birth"`
	Gender            string `json:"gender" validate:"omitempty,oneof=female male other"`
	Phone             string `json:"phone"`
	Ward              string `json:"ward" validate:"required"`
	Diagnosis         string `json:"diagnosis"`
	AttendingDoctorID string `json:"attending_doctor_id"`
}

type dischargeRequest struct {
	Notes string `json:"notes"`
}

type patientLinks struct {
	Self      string `json:"self"`
	Discharge string `json:"discharge,omitempty"`
}

type patientResponse struct {
	*domain.Patient
	Links patientLinks `json:"_links"`
}

type patientPageResponse struct {
	Items      []patientResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

func toPatientResponse(p *domain.Patient) patientResponse {
	links := patientLinks{Self: "/v1/patients/" + p.ID}
	if p.Status == domain.PatientAdmitted {
		links.Discharge = links.Self + "/discharge"
	}
	return patientResponse{Patient: p, Links: links}
}

// Admit handles POST /v1/patients.
//
// @Summary      Admit a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      admitPatientRequest  true  "Admission details"
// @Success      201   {object}  patientResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/patients [post]
func (h *PatientHandler) Admit(c echo.Context) error {
	var req admitPatientRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	dob, err := parseTime("date_of_birth", req.DateOfBirth)
	if err != nil {
		return err
	}

	p, err := h.service.Admit(c.Request().Context(), actor(c), ports.AdmitPatientInput{
		FullName:          req.FullName,
		DateOfBirth:       dob,
		Gender:            req.Gender,
		Phone:             req.Phone,
		Ward:              req.Ward,
		Diagnosis:         req.Diagnosis,
		AttendingDoctorID: req.AttendingDoctorID,
	})
	if err != nil {
		return err
	}

	metrics.PatientEventsTotal.WithLabelValues("admit").Inc()
	return c.JSON(http.StatusCreated, toPatientResponse(p))
}

// Get handles GET /v1/patients/:id.
//
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient ID"
// @Success      200  {object}  patientResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPatientResponse(p))
}

// List handles GET /v1/patients.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "admitted or discharged"
// @Param        ward    query     string  false  "Ward"
// @Param        search  query     string  false  "Partial name match"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  patientPageResponse
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Router       /v1/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ListPatientsFilter{
		Status: c.QueryParam("status"),
		Ward:   c.QueryParam("ward"),
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	items := make([]patientResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = toPatientResponse(p)
	}
	return c.JSON(http.StatusOK, patientPageResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// Discharge handles POST /v1/patients/:id/discharge.
//
// @Summary      Discharge a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true   "Patient ID"
// @Param        body  body      dischargeRequest  false  "Discharge notes"
// @Success      200   {object}  patientResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/patients/{id}/discharge [post]
func (h *PatientHandler) Discharge(c echo.Context) error {
	var req dischargeRequest
	if c.Request().ContentLength != 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}

	p, err := h.service.Discharge(c.Request().Context(), actor(c), c.Param("id"), req.Notes)
	if err != nil {
		return err
	}

	metrics.PatientEventsTotal.WithLabelValues("discharge").Inc()
	return c.JSON(http.StatusOK, toPatientResponse(p))
}
