package ports

import (
	"context"
	"time"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// ExpenseFilter narrows expense listings. Zero values match everything.
type ExpenseFilter struct {
	Category string
	From     time.Time
	To       time.Time
}

// ExpenseRepository defines persistence for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	List(ctx context.Context, filter ExpenseFilter) ([]*domain.Expense, error)
	Total(ctx context.Context, from, to time.Time) (int64, error)
}

// PaymentRepository defines persistence for payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	List(ctx context.Context, patientID string) ([]*domain.Payment, error)
	Total(ctx context.Context, from, to time.Time) (int64, error)
}

// LogExpenseInput carries a new expense.
type LogExpenseInput struct {
	Category    string
	AmountCents int64
	Description string
	SpentAt     time.Time
}

// RecordPaymentInput carries a new payment.
type RecordPaymentInput struct {
	PatientID   string
	AmountCents int64
	Method      string
	Reference   string
}

type FinanceService interface {
	LogExpense(ctx context.Context, actor Actor, in LogExpenseInput) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]*domain.Expense, error)
	RecordPayment(ctx context.Context, actor Actor, in RecordPaymentInput) (*domain.Payment, error)
	ListPayments(ctx context.Context, patientID string) ([]*domain.Payment, error)
}
