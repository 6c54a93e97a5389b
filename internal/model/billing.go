package model

type InvoiceStatus string

const (
	InvoiceStatusPaid          InvoiceStatus = "Paid"
	InvoiceStatusPending       InvoiceStatus = "Pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "Partially Paid"
	InvoiceStatusOverdue       InvoiceStatus = "Overdue"
)

// InvoiceStatuses lists the values offered by the status filter.
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusPaid,
	InvoiceStatusPending,
	InvoiceStatusPartiallyPaid,
	InvoiceStatusOverdue,
}

type ServiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	ID          string        `json:"id"`
	PatientName string        `json:"patient_name"`
	PatientID   string        `json:"patient_id"`
	Date        string        `json:"date"`
	DueDate     string        `json:"due_date"`
	Amount      float64       `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	Services    []ServiceLine `json:"services"`
}

// Total is the sum of the service line amounts.
func (i Invoice) Total() float64 {
	var total float64
	for _, s := range i.Services {
		total += s.Amount
	}
	return total
}

var invoiceVariants = map[string]BadgeVariant{
	"paid":           BadgeDefault,
	"pending":        BadgeSecondary,
	"partially paid": BadgeOutline,
	"overdue":        BadgeDestructive,
}

func (i Invoice) StatusVariant() BadgeVariant {
	return variantFor(string(i.Status), invoiceVariants, BadgeDefault)
}

// InvoiceDetail is the invoice dialog payload with the derived total.
type InvoiceDetail struct {
	Invoice
	Total float64 `json:"total"`
}

func NewInvoiceDetail(inv Invoice) InvoiceDetail {
	return InvoiceDetail{Invoice: inv, Total: inv.Total()}
}

// PaymentRecord is an entry of the payment history. It is not linked to an
// invoice.
type PaymentRecord struct {
	ID      int     `json:"id"`
	Date    string  `json:"date"`
	Patient string  `json:"patient"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status"`
}

func (p PaymentRecord) StatusVariant() BadgeVariant {
	if p.Status == "Completed" {
		return BadgeDefault
	}
	return BadgeSecondary
}

type BillingStats struct {
	TotalRevenue           int64  `json:"total_revenue"`
	TotalRevenueCaption    string `json:"total_revenue_caption"`
	PendingPayments        int64  `json:"pending_payments"`
	PendingPaymentsCaption string `json:"pending_payments_caption"`
	OverdueAmount          int64  `json:"overdue_amount"`
	OverdueAmountCaption   string `json:"overdue_amount_caption"`
	ThisMonth              int64  `json:"this_month"`
	ThisMonthCaption       string `json:"this_month_caption"`
}

// CreateInvoiceRequest is the Create Invoice dialog with a single service
// line.
type CreateInvoiceRequest struct {
	PatientID          string   `json:"patient_id" form:"patient_id"`
	PatientName        string   `json:"patient_name" form:"patient_name"`
	Date               string   `json:"date" form:"date" binding:"omitempty,datetime=2006-01-02"`
	DueDate            string   `json:"due_date" form:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ServiceDescription string   `json:"service_description" form:"service_description"`
	ServiceAmount      *float64 `json:"service_amount" form:"service_amount" binding:"omitempty,min=0"`
}
