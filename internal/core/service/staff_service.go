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

type StaffService struct {
	repo  ports.StaffRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewStaffService(repo ports.StaffRepository, audit ports.AuditRecorder, log zerolog.Logger) *StaffService {
	return &StaffService{repo: repo, audit: audit, log: log}
}

func (s *StaffService) Create(ctx context.Context, actor ports.Actor, in ports.CreateStaffInput) (*domain.StaffMember, error) {
	if strings.TrimSpace(in.FullName) == "" || in.Position == "" || in.Department == "" {
		return nil, fmt.Errorf("%w: full_name, position and department are required", domain.ErrInvalidInput)
	}
	if in.BaseSalaryCents < 0 {
		return nil, fmt.Errorf("%w: base_salary_cents cannot be negative", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	hired := in.HiredAt
	if hired.IsZero() {
		hired = now
	}
	m := &domain.StaffMember{
		ID:              ulid.Make().String(),
		FullName:        strings.TrimSpace(in.FullName),
		Position:        in.Position,
		Department:      in.Department,
		Phone:           in.Phone,
		BaseSalaryCents: in.BaseSalaryCents,
		HiredAt:         hired.UTC(),
		CreatedAt:       now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, "create", "staff", m.ID)
	s.log.Info().Str("staff_id", m.ID).Str("department", m.Department).Msg("staff member created")
	return m, nil
}

func (s *StaffService) Get(ctx context.Context, id string) (*domain.StaffMember, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StaffService) List(ctx context.Context, department string) ([]*domain.StaffMember, error) {
	return s.repo.List(ctx, department)
}
