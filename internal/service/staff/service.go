package staff

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

const FormName = "add_staff"

type StaffService interface {
	List(ctx context.Context, filter model.ListFilter) (model.ListResult[model.StaffMember], error)
	Get(ctx context.Context, id int) (*model.StaffMember, error)
	Schedule(ctx context.Context) ([]model.ShiftDay, error)
	SubmitForm(ctx context.Context, req model.CreateStaffRequest) model.FormReceipt[model.CreateStaffRequest]
	RejectForm(ctx context.Context, errs []validator.FieldError)
}

type Service struct {
	repo    repository.StaffRepository
	auditor *audit.Service
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewService(repo repository.StaffRepository, auditor *audit.Service, log *logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		auditor: auditor,
		log:     log.With("staff"),
		metrics: m,
	}
}

// Matches applies the search term to name, department and specialization,
// and the role filter to the role.
func Matches(m model.StaffMember, filter model.ListFilter) bool {
	return search.MatchAny(filter.Search, m.Name, m.Department, m.Specialization) &&
		search.EqualOrAll(string(m.Role), filter.Role)
}

func (s *Service) List(ctx context.Context, filter model.ListFilter) (model.ListResult[model.StaffMember], error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return model.ListResult[model.StaffMember]{}, fmt.Errorf("failed to list staff: %w", err)
	}

	filtered := search.Filter(members, func(m model.StaffMember) bool {
		return Matches(m, filter)
	})

	s.log.Debug("staff filtered", "search", filter.Search, "role", filter.Role, "count", len(filtered))
	s.metrics.ObserveList(model.SectionStaff, len(filtered))
	return model.NewListResult(filtered), nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.StaffMember, error) {
	member, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return member, nil
}

// Schedule returns the weekly shift grid, Monday to Friday.
func (s *Service) Schedule(ctx context.Context) ([]model.ShiftDay, error) {
	days, err := s.repo.Schedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return days, nil
}

func (s *Service) SubmitForm(ctx context.Context, req model.CreateStaffRequest) model.FormReceipt[model.CreateStaffRequest] {
	s.auditor.Log(ctx, audit.ActionSubmit, "staff", FormName, nil)
	s.metrics.ObserveForm(FormName, metrics.OutcomeAccepted)
	return model.FormReceipt[model.CreateStaffRequest]{Form: FormName, Accepted: true, Draft: req}
}

// RejectForm records a draft that failed its field checks.
func (s *Service) RejectForm(ctx context.Context, errs []validator.FieldError) {
	s.auditor.Reject(ctx, "staff", FormName, errs)
	s.metrics.ObserveForm(FormName, metrics.OutcomeInvalid)
}
