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

func TestFinanceService_RecordPayment(t *testing.T) {
	patients := newStubPatientRepo()
	_ = patients.Create(context.Background(), &domain.Patient{ID: "p1", FullName: "Jane", Status: domain.PatientAdmitted})
	payments := &stubPaymentRepo{}
	svc := NewFinanceService(&stubExpenseRepo{}, payments, patients, nil, zerolog.Nop())

	p, err := svc.RecordPayment(context.Background(), admin, ports.RecordPaymentInput{
		PatientID: "p1", AmountCents: 12500, Method: "card", Reference: "POS-1",
	})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if p.ReceivedBy != admin.ID || p.Method != domain.PaymentCard {
		t.Fatalf("unexpected payment: %+v", p)
	}

	_, err = svc.RecordPayment(context.Background(), admin, ports.RecordPaymentInput{PatientID: "ghost", AmountCents: 1, Method: "cash"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown patient, got %v", err)
	}
	_, err = svc.RecordPayment(context.Background(), admin, ports.RecordPaymentInput{PatientID: "p1", AmountCents: 1, Method: "barter"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown method, got %v", err)
	}
	if len(payments.payments) != 1 {
		t.Fatalf("expected one stored payment, got %d", len(payments.payments))
	}
}

func TestFinanceService_LogExpense(t *testing.T) {
	expenses := &stubExpenseRepo{}
	audit := &stubAudit{}
	svc := NewFinanceService(expenses, &stubPaymentRepo{}, newStubPatientRepo(), audit, zerolog.Nop())

	e, err := svc.LogExpense(context.Background(), admin, ports.LogExpenseInput{Category: " Supplies ", AmountCents: 4200})
	if err != nil {
		t.Fatalf("log expense: %v", err)
	}
	if e.Category != "supplies" || e.SpentAt.IsZero() {
		t.Fatalf("unexpected expense: %+v", e)
	}
	if _, err := svc.LogExpense(context.Background(), admin, ports.LogExpenseInput{Category: "x", AmountCents: -5}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "expense:create" {
		t.Fatalf("unexpected audit trail: %v", got)
	}

	now := time.Now()
	if _, err := svc.ListExpenses(context.Background(), ports.ExpenseFilter{From: now, To: now.Add(-time.Hour)}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted range, got %v", err)
	}
}
