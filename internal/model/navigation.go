package model

// Section identifiers of the navigation shell.
const (
	SectionDashboard    = "dashboard"
	SectionPatients     = "patients"
	SectionAppointments = "appointments"
	SectionStaff        = "staff"
	SectionRecords      = "records"
	SectionBilling      = "billing"
)

// NavItem is one entry of the side menu.
type NavItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Path string `json:"path"`
}

var navigation = []NavItem{
	{ID: SectionDashboard, Name: "Dashboard", Icon: "layout-dashboard", Path: "/dashboard"},
	{ID: SectionPatients, Name: "Patients", Icon: "users", Path: "/patients"},
	{ID: SectionAppointments, Name: "Appointments", Icon: "calendar", Path: "/appointments"},
	{ID: SectionStaff, Name: "Staff", Icon: "user-check", Path: "/staff"},
	{ID: SectionRecords, Name: "Medical Records", Icon: "file-text", Path: "/records"},
	{ID: SectionBilling, Name: "Billing", Icon: "credit-card", Path: "/billing"},
}

// Navigation returns the side menu entries in display order.
func Navigation() []NavItem {
	items := make([]NavItem, len(navigation))
	copy(items, navigation)
	return items
}

// ResolveSection returns the menu entry for id, falling back to the
// dashboard for unknown ids.
func ResolveSection(id string) NavItem {
	for _, item := range navigation {
		if item.ID == id {
			return item
		}
	}
	return navigation[0]
}
