package domain

import "time"

// PatientStatus represents where a patient is in the admission lifecycle.
type PatientStatus string

const (
	PatientAdmitted   PatientStatus = "admitted"
	PatientDischarged PatientStatus = "discharged"
)

// Patient is an admission record.
type Patient struct {
	ID                string        `json:"id" bson:"_id"`
	FullName          string        `json:"full_name" bson:"full_name"`
	DateOfBirth       time.Time     `json:"date_of_birth" bson:"date_of_birth"`
	Gender            string        `json:"gender" bson:"gender"`
	Phone             string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Ward              string        `json:"ward" bson:"ward"`
	Diagnosis         string        `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	AttendingDoctorID string        `json:"attending_doctor_id,omitempty" bson:"attending_doctor_id,omitempty"`
	Status            PatientStatus `json:"status" bson:"status"`
	AdmittedAt        time.Time     `json:"admitted_at" bson:"admitted_at"`
	DischargedAt      *time.Time    `json:"discharged_at,omitempty" bson:"discharged_at,omitempty"`
	DischargeNotes    string        `json:"discharge_notes,omitempty" bson:"discharge_notes,omitempty"`
}

// Discharge moves an admitted patient to discharged.
func (p *Patient) Discharge(at time.Time, notes string) error {
	if p.Status == PatientDischarged {
		return ErrAlreadyDischarged
	}
	p.Status = PatientDischarged
	p.DischargedAt = &at
	p.DischargeNotes = notes
	return nil
}
