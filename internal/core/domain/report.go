package domain

import "time"

// Report is the aggregate returned by the summary endpoint.
type Report struct {
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
	Admissions        int64     `json:"admissions"`
	Discharges        int64     `json:"discharges"`
	CurrentlyAdmitted int64     `json:"currently_admitted"`
	ExpenseCents      int64     `json:"expense_cents"`
	PaymentCents      int64     `json:"payment_cents"`
	NetCents          int64     `json:"net_cents"`
	BonusCents        int64     `json:"bonus_cents"`
	DeductionCents    int64     `json:"deduction_cents"`
}
