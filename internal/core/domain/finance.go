package domain

import "time"

// Expense is an outgoing cost logged by the finance team.
type Expense struct {
	ID          string    `json:"id" bson:"_id"`
	Category    string    `json:"category" bson:"category"`
	AmountCents int64     `json:"amount_cents" bson:"amount_cents"`
	Description string    `json:"description" bson:"description"`
	SpentAt     time.Time `json:"spent_at" bson:"spent_at"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// PaymentMethod is how a patient paid.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCard      PaymentMethod = "card"
	PaymentInsurance PaymentMethod = "insurance"
	PaymentTransfer  PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentInsurance, PaymentTransfer:
		return true
	}
	return false
}

// Payment is money received against a patient account.
type Payment struct {
	ID          string        `json:"id" bson:"_id"`
	PatientID   string        `json:"patient_id" bson:"patient_id"`
	AmountCents int64         `json:"amount_cents" bson:"amount_cents"`
	Method      PaymentMethod `json:"method" bson:"method"`
	Reference   string        `json:"reference,omitempty" bson:"reference,omitempty"`
	ReceivedBy  string        `json:"received_by" bson:"received_by"`
	ReceivedAt  time.Time     `json:"received_at" bson:"received_at"`
}
