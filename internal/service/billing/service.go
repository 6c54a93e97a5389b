package billing

import (
	"context"
	"fmt"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/internal/search"
	"github.com/jwalitptl/noill-admin/internal/service/audit"
	"github.com/jwalitptl/noill-admin/pkg/logger"
	"github.com/jwalitptl/noill-admin/pkg/metrics"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

const FormName = "create_invoice"

type BillingService interface {
	Stats(ctx context.Context) (*model.BillingStats, error)
	Invoices(ctx context.Context, filter model.ListFilter) (model.ListResult[model.Invoice], error)
	Invoice(ctx context.Context, id string) (*model.InvoiceDetail, error)
	Payments(ctx context.Context) (model.ListResult[model.PaymentRecord], error)
	SubmitForm(ctx context.Context, req model.CreateInvoiceRequest) model.FormReceipt[model.CreateInvoiceRequest]
	RejectForm(ctx context.Context, errs []validator.FieldError)
}

type Service struct {
	repo    repository.BillingRepository
	auditor *audit.Service
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewService(repo repository.BillingRepository, auditor *audit.Service, log *logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		auditor: auditor,
		log:     log.With("billing"),
		metrics: m,
	}
}

// Matches applies the search term to the patient name, invoice id and
// patient id, and the status filter to the invoice status.
func Matches(inv model.Invoice, filter model.ListFilter) bool {
	return search.MatchAny(filter.Search, inv.PatientName, inv.ID, inv.PatientID) &&
		search.EqualOrAll(string(inv.Status), filter.Status)
}

func (s *Service) Stats(ctx context.Context) (*model.BillingStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get billing stats: %w", err)
	}
	return stats, nil
}

func (s *Service) Invoices(ctx context.Context, filter model.ListFilter) (model.ListResult[model.Invoice], error) {
	invoices, err := s.repo.ListInvoices(ctx)
	if err != nil {
		return model.ListResult[model.Invoice]{}, fmt.Errorf("failed to list invoices: %w", err)
	}

	filtered := search.Filter(invoices, func(inv model.Invoice) bool {
		return Matches(inv, filter)
	})

	s.log.Debug("invoices filtered", "search", filter.Search, "status", filter.Status, "count", len(filtered))
	s.metrics.ObserveList(model.SectionBilling, len(filtered))
	return model.NewListResult(filtered), nil
}

// Invoice returns the invoice with its total computed from the service
// lines.
func (s *Service) Invoice(ctx context.Context, id string) (*model.InvoiceDetail, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	s.auditor.Log(ctx, audit.ActionView, "invoice", id, nil)
	detail := model.NewInvoiceDetail(*inv)
	return &detail, nil
}

func (s *Service) Payments(ctx context.Context) (model.ListResult[model.PaymentRecord], error) {
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return model.ListResult[model.PaymentRecord]{}, fmt.Errorf("failed to list payments: %w", err)
	}
	return model.NewListResult(payments), nil
}

// SubmitForm accepts the Create Invoice draft. No invoice is issued and no
// payment is processed.
func (s *Service) SubmitForm(ctx context.Context, req model.CreateInvoiceRequest) model.FormReceipt[model.CreateInvoiceRequest] {
	s.auditor.Log(ctx, audit.ActionSubmit, "invoice", FormName, nil)
	s.metrics.ObserveForm(FormName, metrics.OutcomeAccepted)
	return model.FormReceipt[model.CreateInvoiceRequest]{Form: FormName, Accepted: true, Draft: req}
}

// RejectForm records a draft that failed its field checks.
func (s *Service) RejectForm(ctx context.Context, errs []validator.FieldError) {
	s.auditor.Reject(ctx, "invoice", FormName, errs)
	s.metrics.ObserveForm(FormName, metrics.OutcomeInvalid)
}
