package patient

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/internal/search"
	"github.com/jwalitptl/noill-admin/internal/service/audit"
	"github.com/jwalitptl/noill-admin/pkg/logger"
	"github.com/jwalitptl/noill-admin/pkg/metrics"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

// FormName identifies the Add Patient dialog in receipts and metrics.
const FormName = "add_patient"

type PatientService interface {
	List(ctx context.Context, filter model.ListFilter) (model.ListResult[model.Patient], error)
	Get(ctx context.Context, id int) (*model.Patient, error)
	SubmitForm(ctx context.Context, req model.CreatePatientRequest) model.FormReceipt[model.CreatePatientRequest]
	RejectForm(ctx context.Context, errs []validator.FieldError)
}

type Service struct {
	repo    repository.PatientRepository
	auditor *audit.Service
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewService(repo repository.PatientRepository, auditor *audit.Service, log *logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		auditor: auditor,
		log:     log.With("patient"),
		metrics: m,
	}
}

// Matches reports whether the patient's name, phone or email contains the
// search term.
func Matches(p model.Patient, filter model.ListFilter) bool {
	return search.MatchAny(filter.Search, p.Name, p.Phone, p.Email)
}

func (s *Service) List(ctx context.Context, filter model.ListFilter) (model.ListResult[model.Patient], error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return model.ListResult[model.Patient]{}, fmt.Errorf("failed to list patients: %w", err)
	}

	filtered := search.Filter(patients, func(p model.Patient) bool {
		return Matches(p, filter)
	})

	s.log.Debug("patients filtered", "search", filter.Search, "count", len(filtered))
	s.metrics.ObserveList(model.SectionPatients, len(filtered))
	return model.NewListResult(filtered), nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	s.auditor.Log(ctx, audit.ActionView, "patient", strconv.Itoa(id), nil)
	return patient, nil
}

// SubmitForm accepts the Add Patient draft. The draft is echoed and
// discarded: the patient list is never changed.
func (s *Service) SubmitForm(ctx context.Context, req model.CreatePatientRequest) model.FormReceipt[model.CreatePatientRequest] {
	s.auditor.Log(ctx, audit.ActionSubmit, "patient", FormName, nil)
	s.metrics.ObserveForm(FormName, metrics.OutcomeAccepted)
	return model.FormReceipt[model.CreatePatientRequest]{Form: FormName, Accepted: true, Draft: req}
}

// RejectForm records a draft that failed its field checks.
func (s *Service) RejectForm(ctx context.Context, errs []validator.FieldError) {
	s.auditor.Reject(ctx, "patient", FormName, errs)
	s.metrics.ObserveForm(FormName, metrics.OutcomeInvalid)
}
