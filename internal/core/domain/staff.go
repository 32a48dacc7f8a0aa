package domain

import "time"

// StaffMember is an employee record. It is independent of User: not every
// employee has a login.
type StaffMember struct {
	ID              string    `json:"id" bson:"_id"`
	FullName        string    `json:"full_name" bson:"full_name"`
	Position        string    `json:"position" bson:"position"`
	Department      string    `json:"department" bson:"department"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	BaseSalaryCents int64     `json:"base_salary_cents" bson:"base_salary_cents"`
	HiredAt         time.Time `json:"hired_at" bson:"hired_at"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
