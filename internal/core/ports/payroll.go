package ports

import (
	"context"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// PayrollFilter narrows adjustment listings. Empty fields match everything.
type PayrollFilter struct {
	StaffID string
	Period  string
}

// PayrollTotals are summed bonuses and deductions.
type PayrollTotals struct {
	BonusCents     int64
	DeductionCents int64
}

// PayrollRepository defines persistence for payroll adjustments.
type PayrollRepository interface {
	Create(ctx context.Context, a *domain.PayrollAdjustment) error
	List(ctx context.Context, filter PayrollFilter) ([]*domain.PayrollAdjustment, error)
	// Totals sums adjustments whose period falls in [fromPeriod, toPeriod].
	Totals(ctx context.Context, fromPeriod, toPeriod string) (PayrollTotals, error)
}

// AddAdjustmentInput carries a bonus or deduction.
type AddAdjustmentInput struct {
	StaffID     string
	Kind        string
	AmountCents int64
	Reason      string
	Period      string
}

type PayrollService interface {
	AddAdjustment(ctx context.Context, actor Actor, in AddAdjustmentInput) (*domain.PayrollAdjustment, error)
	ListAdjustments(ctx context.Context, filter PayrollFilter) ([]*domain.PayrollAdjustment, error)
	Summary(ctx context.Context, period string) ([]domain.PayrollLine, error)
}
