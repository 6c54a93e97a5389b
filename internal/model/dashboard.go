package model

import "strings"

type DashboardStats struct {
	TotalPatients            int    `json:"total_patients"`
	TotalPatientsCaption     string `json:"total_patients_caption"`
	TodayAppointments        int    `json:"today_appointments"`
	TodayAppointmentsCaption string `json:"today_appointments_caption"`
	ActiveStaff              int    `json:"active_staff"`
	ActiveStaffCaption       string `json:"active_staff_caption"`
	MonthlyRevenue           int64  `json:"monthly_revenue"`
	MonthlyRevenueCaption    string `json:"monthly_revenue_caption"`
}

// Activity is an entry of the Recent Activities feed.
type Activity struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Patient string `json:"patient"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

// Label capitalises the activity type: "appointment" becomes "Appointment".
func (a Activity) Label() string {
	if a.Type == "" {
		return ""
	}
	return strings.ToUpper(a.Type[:1]) + a.Type[1:]
}

func (a Activity) StatusVariant() BadgeVariant {
	switch a.Status {
	case "completed":
		return BadgeDefault
	case "urgent":
		return BadgeDestructive
	case "active":
		return BadgeSecondary
	default:
		return BadgeOutline
	}
}

type UpcomingAppointment struct {
	ID      int    `json:"id"`
	Patient string `json:"patient"`
	Doctor  string `json:"doctor"`
	Time    string `json:"time"`
	Type    string `json:"type"`
}

// Dashboard is everything the dashboard screen shows.
type Dashboard struct {
	Stats      DashboardStats        `json:"stats"`
	Activities []Activity            `json:"recent_activities"`
	Upcoming   []UpcomingAppointment `json:"upcoming_appointments"`
}
