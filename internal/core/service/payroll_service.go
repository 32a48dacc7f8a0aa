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

type PayrollService struct {
	repo  ports.PayrollRepository
	staff ports.StaffRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewPayrollService(repo ports.PayrollRepository, staff ports.StaffRepository, audit ports.AuditRecorder, log zerolog.Logger) *PayrollService {
	return &PayrollService{repo: repo, staff: staff, audit: audit, log: log}
}

// AddAdjustment records a bonus or deduction against an existing staff member.
func (s *PayrollService) AddAdjustment(ctx context.Context, actor ports.Actor, in ports.AddAdjustmentInput) (*domain.PayrollAdjustment, error) {
	kind := domain.AdjustmentKind(in.Kind)
	switch {
	case !kind.Valid():
		return nil, fmt.Errorf("%w: kind must be bonus or deduction", domain.ErrInvalidInput)
	case in.AmountCents <= 0:
		return nil, fmt.Errorf("%w: amount_cents must be positive", domain.ErrInvalidInput)
	case !domain.ValidPeriod(in.Period):
		return nil, fmt.Errorf("%w: period must be YYYY-MM", domain.ErrInvalidInput)
	case strings.TrimSpace(in.Reason) == "":
		return nil, fmt.Errorf("%w: reason is required", domain.ErrInvalidInput)
	}

	if _, err := s.staff.FindByID(ctx, in.StaffID); err != nil {
		return nil, fmt.Errorf("payroll adjustment: %w", err)
	}

	a := &domain.PayrollAdjustment{
		ID:          ulid.Make().String(),
		StaffID:     in.StaffID,
		Kind:        kind,
		AmountCents: in.AmountCents,
		Reason:      strings.TrimSpace(in.Reason),
		Period:      in.Period,
		CreatedBy:   actor.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, string(kind), "payroll_adjustment", a.ID)
	s.log.Info().
		Str("staff_id", a.StaffID).
		Str("kind", string(kind)).
		Int64("amount_cents", a.AmountCents).
		Str("period", a.Period).
		Msg("payroll adjustment recorded")
	return a, nil
}

func (s *PayrollService) ListAdjustments(ctx context.Context, f ports.PayrollFilter) ([]*domain.PayrollAdjustment, error) {
	if f.Period != "" && !domain.ValidPeriod(f.Period) {
		return nil, fmt.Errorf("%w: period must be YYYY-MM", domain.ErrInvalidInput)
	}
	return s.repo.List(ctx, f)
}

// Summary computes each staff member's net pay for period.
func (s *PayrollService) Summary(ctx context.Context, period string) ([]domain.PayrollLine, error) {
	if !domain.ValidPeriod(period) {
		return nil, fmt.Errorf("%w: period must be YYYY-MM", domain.ErrInvalidInput)
	}

	members, err := s.staff.List(ctx, "")
	if err != nil {
		return nil, err
	}
	adjustments, err := s.repo.List(ctx, ports.PayrollFilter{Period: period})
	if err != nil {
		return nil, err
	}

	lines := make([]domain.PayrollLine, 0, len(members))
	index := make(map[string]int, len(members))
	for _, m := range members {
		index[m.ID] = len(lines)
		lines = append(lines, domain.PayrollLine{
			StaffID:         m.ID,
			FullName:        m.FullName,
			BaseSalaryCents: m.BaseSalaryCents,
			NetCents:        m.BaseSalaryCents,
		})
	}
	for _, a := range adjustments {
		i, ok := index[a.StaffID]
		if !ok {
			continue
		}
		if a.Kind == domain.AdjustmentBonus {
			lines[i].BonusCents += a.AmountCents
		} else {
			lines[i].DeductionCents += a.AmountCents
		}
		lines[i].NetCents += a.Signed()
	}
	return lines, nil
}
