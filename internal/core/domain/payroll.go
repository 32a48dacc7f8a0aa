package domain

import (
	"regexp"
	"time"
)

// AdjustmentKind distinguishes additions to pay from subtractions.
type AdjustmentKind string

const (
	AdjustmentBonus     AdjustmentKind = "bonus"
	AdjustmentDeduction AdjustmentKind = "deduction"
)

func (k AdjustmentKind) Valid() bool {
	return k == AdjustmentBonus || k == AdjustmentDeduction
}

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidPeriod reports whether s is a payroll period in YYYY-MM form.
func ValidPeriod(s string) bool { return periodPattern.MatchString(s) }

// PayrollAdjustment is a one-off bonus or deduction applied to a staff
// member's pay for a period.
type PayrollAdjustment struct {
	ID          string         `json:"id" bson:"_id"`
	StaffID     string         `json:"staff_id" bson:"staff_id"`
	Kind        AdjustmentKind `json:"kind" bson:"kind"`
	AmountCents int64          `json:"amount_cents" bson:"amount_cents"`
	Reason      string         `json:"reason" bson:"reason"`
	Period      string         `json:"period" bson:"period"`
	CreatedBy   string         `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
}

// Signed returns the amount with deductions negated.
func (a PayrollAdjustment) Signed() int64 {
	if a.Kind == AdjustmentDeduction {
		return -a.AmountCents
	}
	return a.AmountCents
}

// PayrollLine is one staff member's pay for a period.
type PayrollLine struct {
	StaffID         string `json:"staff_id"`
	FullName        string `json:"full_name"`
	BaseSalaryCents int64  `json:"base_salary_cents"`
	BonusCents      int64  `json:"bonus_cents"`
	DeductionCents  int64  `json:"deduction_cents"`
	NetCents        int64  `json:"net_cents"`
}
