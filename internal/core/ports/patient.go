package ports

import (
	"context"
	"time"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// ListPatientsFilter carries the query parameters for listing patients.
type ListPatientsFilter struct {
	Status string // optional: admitted | discharged
	Ward   string // optional
	Search string // optional: partial match on full_name
	Page   int    // 1-based
	Limit  int    // capped at 100 by the service
}

// PatientRepository defines persistence operations for patients.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) error
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	// Discharge persists a discharge only if the patient is still admitted.
	Discharge(ctx context.Context, id string, at time.Time, notes string) error
	List(ctx context.Context, filter ListPatientsFilter) ([]*domain.Patient, int64, error)
	CountAdmittedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountDischargedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, status domain.PatientStatus) (int64, error)
}

// AdmitPatientInput carries a new admission.
type AdmitPatientInput struct {
	FullName          string
	DateOfBirth       time.Time
	Gender            string
	Phone             string
	Ward              string
	Diagnosis         string
	AttendingDoctorID string
}

// Page is a generic page of results.
type Page[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type PatientService interface {
	Admit(ctx context.Context, actor Actor, in AdmitPatientInput) (*domain.Patient, error)
	Get(ctx context.Context, id string) (*domain.Patient, error)
	Discharge(ctx context.Context, actor Actor, id, notes string) (*domain.Patient, error)
	List(ctx context.Context, filter ListPatientsFilter) (*Page[*domain.Patient], error)
}
