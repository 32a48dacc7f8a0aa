package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	// maxPage keeps (page-1)*limit far from overflowing the skip offset.
	maxPage = 100_000
)

type PatientService struct {
	repo  ports.PatientRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, audit ports.AuditRecorder, log zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, audit: audit, log: log}
}

// Admit creates an admission record with status admitted.
func (s *PatientService) Admit(ctx context.Context, actor ports.Actor, in ports.AdmitPatientInput) (*domain.Patient, error) {
	if strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Ward) == "" {
		return nil, fmt.Errorf("%w: full_name and ward are required", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	if in.DateOfBirth.After(now) {
		return nil, fmt.Errorf("%w: date_of_birth is in the future", domain.ErrInvalidInput)
	}

	p := &domain.Patient{
		ID:                ulid.Make().String(),
		FullName:          strings.TrimSpace(in.FullName),
		DateOfBirth:       in.DateOfBirth.UTC(),
		Gender:            in.Gender,
		Phone:             in.Phone,
		Ward:              in.Ward,
		Diagnosis:         in.Diagnosis,
		AttendingDoctorID: in.AttendingDoctorID,
		Status:            domain.PatientAdmitted,
		AdmittedAt:        now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error().Err(err).Msg("failed to admit patient")
		return nil, err
	}

	recordAudit(s.audit, actor, "admit", "patient", p.ID)
	s.log.Info().Str("patient_id", p.ID).Str("ward", p.Ward).Msg("patient admitted")
	return p, nil
}

func (s *PatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

// Discharge marks an admitted patient as discharged.
func (s *PatientService) Discharge(ctx context.Context, actor ports.Actor, id, notes string) (*domain.Patient, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	at := time.Now().UTC()
	if err := p.Discharge(at, notes); err != nil {
		return nil, err
	}
	if err := s.repo.Discharge(ctx, id, at, notes); err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, "discharge", "patient", id)
	s.log.Info().Str("patient_id", id).Msg("patient discharged")
	return p, nil
}

func (s *PatientService) List(ctx context.Context, f ports.ListPatientsFilter) (*ports.Page[*domain.Patient], error) {
	if f.Status != "" && f.Status != string(domain.PatientAdmitted) && f.Status != string(domain.PatientDischarged) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, f.Status)
	}
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ports.Page[*domain.Patient]{
		Items:      items,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: totalPages(total, f.Limit),
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
