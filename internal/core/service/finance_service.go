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

type FinanceService struct {
	expenses ports.ExpenseRepository
	payments ports.PaymentRepository
	patients ports.PatientRepository
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewFinanceService(
	expenses ports.ExpenseRepository,
	payments ports.PaymentRepository,
	patients ports.PatientRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *FinanceService {
	return &FinanceService{expenses: expenses, payments: payments, patients: patients, audit: audit, log: log}
}

func (s *FinanceService) LogExpense(ctx context.Context, actor ports.Actor, in ports.LogExpenseInput) (*domain.Expense, error) {
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}
	if in.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount_cents must be positive", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	spent := in.SpentAt
	if spent.IsZero() {
		spent = now
	}
	e := &domain.Expense{
		ID:          ulid.Make().String(),
		Category:    strings.ToLower(strings.TrimSpace(in.Category)),
		AmountCents: in.AmountCents,
		Description: in.Description,
		SpentAt:     spent.UTC(),
		CreatedBy:   actor.ID,
		CreatedAt:   now,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, "create", "expense", e.ID)
	s.log.Info().Str("expense_id", e.ID).Str("category", e.Category).Int64("amount_cents", e.AmountCents).Msg("expense logged")
	return e, nil
}

func (s *FinanceService) ListExpenses(ctx context.Context, f ports.ExpenseFilter) ([]*domain.Expense, error) {
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return nil, fmt.Errorf("%w: to is before from", domain.ErrInvalidInput)
	}
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	return s.expenses.List(ctx, f)
}

// RecordPayment records money received for an existing patient.
func (s *FinanceService) RecordPayment(ctx context.Context, actor ports.Actor, in ports.RecordPaymentInput) (*domain.Payment, error) {
	method := domain.PaymentMethod(in.Method)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidInput, in.Method)
	}
	if in.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount_cents must be positive", domain.ErrInvalidInput)
	}
	if _, err := s.patients.FindByID(ctx, in.PatientID); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	p := &domain.Payment{
		ID:          ulid.Make().String(),
		PatientID:   in.PatientID,
		AmountCents: in.AmountCents,
		Method:      method,
		Reference:   in.Reference,
		ReceivedBy:  actor.ID,
		ReceivedAt:  time.Now().UTC(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, "create", "payment", p.ID)
	s.log.Info().Str("payment_id", p.ID).Str("patient_id", p.PatientID).Int64("amount_cents", p.AmountCents).Msg("payment recorded")
	return p, nil
}

func (s *FinanceService) ListPayments(ctx context.Context, patientID string) ([]*domain.Payment, error) {
	return s.payments.List(ctx, patientID)
}
