package model

type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "Active"
	PatientStatusInactive PatientStatus = "Inactive"
)

type Patient struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	Age              int           `json:"age"`
	Gender           string        `json:"gender"`
	Phone            string        `json:"phone"`
	Email            string        `json:"email"`
	Address          string        `json:"address"`
	BloodGroup       string        `json:"blood_group"`
	LastVisit        string        `json:"last_visit"`
	Status           PatientStatus `json:"status"`
	EmergencyContact string        `json:"emergency_contact"`
}

// StatusVariant is default for active patients and secondary otherwise.
func (p Patient) StatusVariant() BadgeVariant {
	if p.Status == PatientStatusActive {
		return BadgeDefault
	}
	return BadgeSecondary
}

// CreatePatientRequest is the Add Patient dialog. Only field types are
// checked; every field may be left blank.
type CreatePatientRequest struct {
	Name             string `json:"name" form:"name"`
	Age              *int   `json:"age" form:"age" binding:"omitempty,min=0"`
	Gender           string `json:"gender" form:"gender"`
	BloodGroup       string `json:"blood_group" form:"blood_group"`
	Phone            string `json:"phone" form:"phone"`
	Email            string `json:"email" form:"email" binding:"omitempty,email"`
	Address          string `json:"address" form:"address"`
	EmergencyContact string `json:"emergency_contact" form:"emergency_contact"`
}
