package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/carepoint/clinic-admin/internal/api/middleware"
	"github.com/carepoint/clinic-admin/internal/core/domain"
)

type stubReportService struct {
	report *domain.Report
}

func (s *stubReportService) Summary(context.Context, time.Time, time.Time) (*domain.Report, error) {
	return s.report, nil
}

func TestReportHandler_Dashboard_GatesFinanceTiles(t *testing.T) {
	h := NewReportHandler(&stubReportService{report: &domain.Report{Admissions: 4, PaymentCents: 900, ExpenseCents: 100, NetCents: 800}})

	c, rec := newJSONContext(http.MethodGet, "/v1/dashboard", "")
	middleware.SetUser(c, "sid", &domain.User{
		ID: "d1", FullName: "Dr. Who", Role: domain.RoleDoctor, IsActive: true,
		Permissions: []domain.Permission{domain.PermViewReports},
	})
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["greeting"] != "Welcome, Dr. Who" {
		t.Fatalf("unexpected greeting: %v", resp["greeting"])
	}
	if _, ok := resp["report"]; !ok {
		t.Fatalf("expected report for view_reports")
	}
	if _, ok := resp["finance"]; ok {
		t.Fatalf("finance tiles must be hidden without view_finance")
	}
}

func TestReportHandler_DashboardFallback(t *testing.T) {
	h := NewReportHandler(&stubReportService{})

	c, rec := newJSONContext(http.MethodGet, "/v1/dashboard", "")
	middleware.SetUser(c, "sid", &domain.User{ID: "n1", Username: "nina", Role: domain.RoleNurse, IsActive: true})
	if err := h.DashboardFallback(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Greeting != "Welcome, nina" || resp.Report != nil || resp.Finance != nil {
		t.Fatalf("unexpected fallback: %+v", resp)
	}
	if len(resp.Menu) != 1 || resp.Menu[0].Key != "dashboard" {
		t.Fatalf("unexpected menu: %+v", resp.Menu)
	}
}
