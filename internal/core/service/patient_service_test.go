package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

func TestPatientService_AdmitAndDischarge(t *testing.T) {
	repo := newStubPatientRepo()
	audit := &stubAudit{}
	svc := NewPatientService(repo, audit, zerolog.Nop())
	ctx := context.Background()

	p, err := svc.Admit(ctx, admin, ports.AdmitPatientInput{
		FullName:    "  Jane Roe ",
		DateOfBirth: time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC),
		Ward:        "B2",
	})
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if p.Status != domain.PatientAdmitted || p.FullName != "Jane Roe" {
		t.Fatalf("unexpected patient: %+v", p)
	}

	discharged, err := svc.Discharge(ctx, admin, p.ID, "recovered")
	if err != nil {
		t.Fatalf("discharge: %v", err)
	}
	if discharged.Status != domain.PatientDischarged || discharged.DischargedAt == nil {
		t.Fatalf("expected discharged patient, got %+v", discharged)
	}

	if _, err := svc.Discharge(ctx, admin, p.ID, "again"); !errors.Is(err, domain.ErrAlreadyDischarged) {
		t.Fatalf("expected ErrAlreadyDischarged, got %v", err)
	}

	got := audit.actions()
	if len(got) != 2 || got[0] != "patient:admit" || got[1] != "patient:discharge" {
		t.Fatalf("unexpected audit trail: %v", got)
	}
}

func TestPatientService_Admit_Validation(t *testing.T) {
	svc := NewPatientService(newStubPatientRepo(), nil, zerolog.Nop())

	if _, err := svc.Admit(context.Background(), admin, ports.AdmitPatientInput{FullName: "X"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing ward, got %v", err)
	}
	future := time.Now().Add(48 * time.Hour)
	if _, err := svc.Admit(context.Background(), admin, ports.AdmitPatientInput{FullName: "X", Ward: "A", DateOfBirth: future}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for future birth date, got %v", err)
	}
}

func TestPatientService_List_Pagination(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo, nil, zerolog.Nop())
	for i := 0; i < 3; i++ {
		if _, err := svc.Admit(context.Background(), admin, ports.AdmitPatientInput{FullName: "P", Ward: "A"}); err != nil {
			t.Fatalf("admit: %v", err)
		}
	}

	page, err := svc.List(context.Background(), ports.ListPatientsFilter{Limit: 500})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Limit != 100 || page.Page != 1 || page.Total != 3 || page.TotalPages != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}

	if _, err := svc.List(context.Background(), ports.ListPatientsFilter{Status: "lost"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, defaultPageLimit},
		{-3, 10, 1, 10},
		{2, 500, 2, maxPageLimit},
		{1 << 62, 100, maxPage, 100},
	}
	for _, tc := range cases {
		page, limit := normalizePage(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)", tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
