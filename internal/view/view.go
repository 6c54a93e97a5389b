// Package view renders the HTML screens. Every page is the layout shell
// (side menu, header, main area) around one screen template; the set is
// parsed once at start-up from the embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin/render"

	"github.com/jwalitptl/noill-admin/internal/model"
)

//go:embed templates
var templateFS embed.FS

// Page names accepted by Renderer.Instance.
const (
	PageDashboard    = "dashboard"
	PagePatients     = "patients"
	PagePatient      = "patient"
	PageAppointments = "appointments"
	PageStaff        = "staff"
	PageRecords      = "records"
	PageRecord       = "record"
	PageBilling      = "billing"
	PageInvoice      = "invoice"
	PageNotFound     = "not_found"
)

var pages = []string{
	PageDashboard,
	PagePatients,
	PagePatient,
	PageAppointments,
	PageStaff,
	PageRecords,
	PageRecord,
	PageBilling,
	PageInvoice,
	PageNotFound,
}

// Renderer implements gin's render.HTMLRender over one template set per
// page.
type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").
			Funcs(Funcs()).
			ParseFS(templateFS,
				"templates/layout.html",
				"templates/partials/*.html",
				"templates/"+name+".html",
			)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Check reports whether every page template is parsed.
func (r *Renderer) Check() error {
	for _, name := range pages {
		if _, ok := r.templates[name]; !ok {
			return fmt.Errorf("template %s not loaded", name)
		}
	}
	return nil
}

// Instance returns the render for page name. Unknown names render the
// not-found page.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		t = r.templates[PageNotFound]
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// Page is the data every template receives.
type Page struct {
	Title     string
	Active    model.NavItem
	Nav       []model.NavItem
	RequestID string
	Filter    model.ListFilter
	// Tab selects the inner tab of screens that have them.
	Tab string
	// Dialog is true while the screen's create dialog is open.
	Dialog  bool
	Errors  map[string]string
	Values  map[string]string
	Message string
	Data    any
}

// NewPage prepares a page for the given navigation section.
func NewPage(section string) Page {
	active := model.ResolveSection(section)
	return Page{
		Title:  active.Name,
		Active: active,
		Nav:    model.Navigation(),
		Errors: map[string]string{},
		Values: map[string]string{},
	}
}

// Screen payloads that combine more than one service result.
type (
	AppointmentsData struct {
		Result   model.ListResult[model.Appointment]
		Options  *model.AppointmentOptions
		Statuses []model.AppointmentStatus
	}

	StaffData struct {
		Result   model.ListResult[model.StaffMember]
		Schedule []model.ShiftDay
	}

	RecordsData struct {
		Result  model.ListResult[model.MedicalRecord]
		History *model.PatientHistory
	}

	BillingData struct {
		Stats    *model.BillingStats
		Invoices model.ListResult[model.Invoice]
		Payments model.ListResult[model.PaymentRecord]
		Statuses []model.InvoiceStatus
	}
)
