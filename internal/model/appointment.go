package model

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// AppointmentStatuses lists the values offered by the status filter.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

type Appointment struct {
	ID          int               `json:"id"`
	PatientName string            `json:"patient_name"`
	DoctorName  string            `json:"doctor_name"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Type        string            `json:"type"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
}

var appointmentVariants = map[string]BadgeVariant{
	"scheduled": BadgeDefault,
	"confirmed": BadgeSecondary,
	"completed": BadgeOutline,
	"cancelled": BadgeDestructive,
}

func (a Appointment) StatusVariant() BadgeVariant {
	return variantFor(string(a.Status), appointmentVariants, BadgeDefault)
}

// AppointmentType is an option of the Schedule Appointment type select.
type AppointmentType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AppointmentOptions feeds the selects of the scheduling dialog.
type AppointmentOptions struct {
	Doctors   []string          `json:"doctors"`
	TimeSlots []string          `json:"time_slots"`
	Types     []AppointmentType `json:"types"`
}

// CreateAppointmentRequest is the Schedule Appointment dialog.
type CreateAppointmentRequest struct {
	PatientName string `json:"patient_name" form:"patient_name"`
	DoctorName  string `json:"doctor_name" form:"doctor_name"`
	Date        string `json:"date" form:"date" binding:"omitempty,datetime=2006-01-02"`
	Time        string `json:"time" form:"time"`
	Type        string `json:"type" form:"type"`
	Duration    *int   `json:"duration" form:"duration" binding:"omitempty,min=0"`
	Notes       string `json:"notes" form:"notes"`
}
