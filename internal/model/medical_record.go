package model

type RecordStatus string

const (
	RecordStatusActive        RecordStatus = "Active"
	RecordStatusCompleted     RecordStatus = "Completed"
	RecordStatusPendingReview RecordStatus = "Pending Review"
	RecordStatusArchived      RecordStatus = "Archived"
)

type MedicalRecord struct {
	ID          int          `json:"id"`
	PatientName string       `json:"patient_name"`
	PatientID   string       `json:"patient_id"`
	RecordType  string       `json:"record_type"`
	Date        string       `json:"date"`
	Doctor      string       `json:"doctor"`
	Description string       `json:"description"`
	Status      RecordStatus `json:"status"`
	Files       []string     `json:"files"`
}

var recordVariants = map[string]BadgeVariant{
	"active":         BadgeDefault,
	"completed":      BadgeSecondary,
	"pending review": BadgeOutline,
	"archived":       BadgeDestructive,
}

func (r MedicalRecord) StatusVariant() BadgeVariant {
	return variantFor(string(r.Status), recordVariants, BadgeDefault)
}

type Vitals struct {
	BloodPressure string `json:"bp"`
	Pulse         string `json:"pulse"`
	Temperature   string `json:"temp"`
	Weight        string `json:"weight"`
}

// HistoryEntry is one item of a patient's timeline. Vitals, Results and
// Instructions are present depending on the entry type.
type HistoryEntry struct {
	ID           int     `json:"id"`
	PatientID    string  `json:"patient_id"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	Doctor       string  `json:"doctor"`
	Vitals       *Vitals `json:"vitals,omitempty"`
	Results      string  `json:"results,omitempty"`
	Instructions string  `json:"instructions,omitempty"`
}

// PatientRef is an option of the Patient History selector.
type PatientRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PatientHistory is the Patient History tab for one selected patient.
type PatientHistory struct {
	Patient  PatientRef     `json:"patient"`
	Patients []PatientRef   `json:"patients"`
	Entries  []HistoryEntry `json:"entries"`
}

// CreateRecordRequest is the Add Record dialog. Attachments are not
// accepted.
type CreateRecordRequest struct {
	PatientID   string `json:"patient_id" form:"patient_id"`
	RecordType  string `json:"record_type" form:"record_type"`
	Date        string `json:"date" form:"date" binding:"omitempty,datetime=2006-01-02"`
	Doctor      string `json:"doctor" form:"doctor"`
	Description string `json:"description" form:"description"`
}
