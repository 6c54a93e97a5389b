package memory

import (
	"context"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/pkg/errors"
)

type billingRepository struct {
	invoices []model.Invoice
	payments []model.PaymentRecord
	stats    model.BillingStats
}

func NewBillingRepository(ds *Dataset) repository.BillingRepository {
	return &billingRepository{
		invoices: ds.Invoices,
		payments: ds.Payments,
		stats:    ds.BillingStats,
	}
}

func copyInvoice(inv model.Invoice) model.Invoice {
	inv.Services = cloneSlice(inv.Services)
	return inv
}

func (r *billingRepository) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, copyInvoice(inv))
	}
	return out, nil
}

func (r *billingRepository) GetInvoice(ctx context.Context, id string) (*model.Invoice, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	for _, inv := range r.invoices {
		if inv.ID == id {
			invoice := copyInvoice(inv)
			return &invoice, nil
		}
	}
	return nil, errors.NotFound("invoice "+id, nil)
}

func (r *billingRepository) ListPayments(ctx context.Context) ([]model.PaymentRecord, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return cloneSlice(r.payments), nil
}

func (r *billingRepository) Stats(ctx context.Context) (*model.BillingStats, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	stats := r.stats
	return &stats, nil
}
