package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

type ReportService struct {
	patients ports.PatientRepository
	expenses ports.ExpenseRepository
	payments ports.PaymentRepository
	payroll  ports.PayrollRepository
	now      func() time.Time
}

func NewReportService(
	patients ports.PatientRepository,
	expenses ports.ExpenseRepository,
	payments ports.PaymentRepository,
	payroll ports.PayrollRepository,
) *ReportService {
	return &ReportService{patients: patients, expenses: expenses, payments: payments, payroll: payroll, now: time.Now}
}

// Summary aggregates activity in [from, to]. A zero range covers the
// current calendar month.
func (s *ReportService) Summary(ctx context.Context, from, to time.Time) (*domain.Report, error) {
	now := s.now().UTC()
	if from.IsZero() {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = now
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to is before from", domain.ErrInvalidInput)
	}

	r := &domain.Report{From: from, To: to}
	var err error

	if r.Admissions, err = s.patients.CountAdmittedBetween(ctx, from, to); err != nil {
		return nil, fmt.Errorf("report admissions: %w", err)
	}
	if r.Discharges, err = s.patients.CountDischargedBetween(ctx, from, to); err != nil {
		return nil, fmt.Errorf("report discharges: %w", err)
	}
	if r.CurrentlyAdmitted, err = s.patients.CountByStatus(ctx, domain.PatientAdmitted); err != nil {
		return nil, fmt.Errorf("report admitted: %w", err)
	}
	if r.ExpenseCents, err = s.expenses.Total(ctx, from, to); err != nil {
		return nil, fmt.Errorf("report expenses: %w", err)
	}
	if r.PaymentCents, err = s.payments.Total(ctx, from, to); err != nil {
		return nil, fmt.Errorf("report payments: %w", err)
	}

	totals, err := s.payroll.Totals(ctx, from.Format("2006-01"), to.Format("2006-01"))
	if err != nil {
		return nil, fmt.Errorf("report payroll: %w", err)
	}
	r.BonusCents = totals.BonusCents
	r.DeductionCents = totals.DeductionCents
	r.NetCents = r.PaymentCents - r.ExpenseCents
	return r, nil
}
