package appointment

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

const FormName = "schedule_appointment"

type AppointmentService interface {
	List(ctx context.Context, filter model.ListFilter) (model.ListResult[model.Appointment], error)
	Get(ctx context.Context, id int) (*model.Appointment, error)
	Options(ctx context.Context) (*model.AppointmentOptions, error)
	SubmitForm(ctx context.Context, req model.CreateAppointmentRequest) model.FormReceipt[model.CreateAppointmentRequest]
	RejectForm(ctx context.Context, errs []validator.FieldError)
}

type Service struct {
	repo    repository.AppointmentRepository
	auditor *audit.Service
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewService(repo repository.AppointmentRepository, auditor *audit.Service, log *logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		auditor: auditor,
		log:     log.With("appointment"),
		metrics: m,
	}
}

// Matches applies the search term to the patient and doctor names and the
// status filter to the appointment status. Both must hold.
func Matches(a model.Appointment, filter model.ListFilter) bool {
	return search.MatchAny(filter.Search, a.PatientName, a.DoctorName) &&
		search.EqualOrAll(string(a.Status), filter.Status)
}

func (s *Service) List(ctx context.Context, filter model.ListFilter) (model.ListResult[model.Appointment], error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return model.ListResult[model.Appointment]{}, fmt.Errorf("failed to list appointments: %w", err)
	}

	filtered := search.Filter(appointments, func(a model.Appointment) bool {
		return Matches(a, filter)
	})

	s.log.Debug("appointments filtered", "search", filter.Search, "status", filter.Status, "count", len(filtered))
	s.metrics.ObserveList(model.SectionAppointments, len(filtered))
	return model.NewListResult(filtered), nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

// Options returns the doctors, time slots and visit types offered by the
// scheduling dialog.
func (s *Service) Options(ctx context.Context) (*model.AppointmentOptions, error) {
	opts, err := s.repo.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment options: %w", err)
	}
	return opts, nil
}

// SubmitForm accepts the Schedule Appointment draft without booking
// anything. Conflicting slots are not checked.
func (s *Service) SubmitForm(ctx context.Context, req model.CreateAppointmentRequest) model.FormReceipt[model.CreateAppointmentRequest] {
	s.auditor.Log(ctx, audit.ActionSubmit, "appointment", FormName, nil)
	s.metrics.ObserveForm(FormName, metrics.OutcomeAccepted)
	return model.FormReceipt[model.CreateAppointmentRequest]{Form: FormName, Accepted: true, Draft: req}
}

// RejectForm records a draft that failed its field checks.
func (s *Service) RejectForm(ctx context.Context, errs []validator.FieldError) {
	s.auditor.Reject(ctx, "appointment", FormName, errs)
	s.metrics.ObserveForm(FormName, metrics.OutcomeInvalid)
}
