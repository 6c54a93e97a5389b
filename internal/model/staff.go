package model

import "strings"

type StaffRole string

const (
	StaffRoleDoctor StaffRole = "Doctor"
	StaffRoleNurse  StaffRole = "Nurse"
)

type StaffStatus string

const (
	StaffStatusAvailable StaffStatus = "Available"
	StaffStatusInSurgery StaffStatus = "In Surgery"
	StaffStatusOffDuty   StaffStatus = "Off Duty"
	StaffStatusOnLeave   StaffStatus = "On Leave"
)

type StaffMember struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Role           StaffRole   `json:"role"`
	Department     string      `json:"department"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email"`
	Status         StaffStatus `json:"status"`
	Shift          string      `json:"shift"`
	Experience     string      `json:"experience"`
	Specialization string      `json:"specialization"`
}

var staffVariants = map[string]BadgeVariant{
	"available":  BadgeDefault,
	"in surgery": BadgeSecondary,
	"off duty":   BadgeOutline,
	"on leave":   BadgeDestructive,
}

func (s StaffMember) StatusVariant() BadgeVariant {
	return variantFor(string(s.Status), staffVariants, BadgeDefault)
}

// Initials is the avatar fallback: the first letter of every word of the
// name, so "Dr. Sarah Wilson" becomes "DSW".
func (s StaffMember) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(s.Name) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

// ShiftDay is one row of the weekly schedule.
type ShiftDay struct {
	Day     string `json:"day"`
	Morning string `json:"morning"`
	Evening string `json:"evening"`
	Night   string `json:"night"`
}

// CreateStaffRequest is the Add Staff Member dialog.
type CreateStaffRequest struct {
	Name           string `json:"name" form:"name"`
	Role           string `json:"role" form:"role"`
	Department     string `json:"department" form:"department"`
	Phone          string `json:"phone" form:"phone"`
	Email          string `json:"email" form:"email" binding:"omitempty,email"`
	Shift          string `json:"shift" form:"shift"`
	Experience     string `json:"experience" form:"experience"`
	Specialization string `json:"specialization" form:"specialization"`
}
