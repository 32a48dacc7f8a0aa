package domain

import "time"

// Settings holds the clinic-wide configuration edited from the admin screen.
type Settings struct {
	ClinicName string    `json:"clinic_name" bson:"clinic_name"`
	Currency   string    `json:"currency" bson:"currency"`
	Timezone   string    `json:"timezone" bson:"timezone"`
	Address    string    `json:"address,omitempty" bson:"address,omitempty"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	UpdatedBy  string    `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// DefaultSettings is returned until an administrator saves the first version.
func DefaultSettings() Settings {
	return Settings{ClinicName: "Clinic", Currency: "USD", Timezone: "UTC"}
}
