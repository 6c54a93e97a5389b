package medical

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/internal/search"
	"github.com/jwalitptl/noill-admin/internal/service/audit"
	"github.com/jwalitptl/noill-admin/pkg/errors"
	"github.com/jwalitptl/noill-admin/pkg/logger"
	"github.com/jwalitptl/noill-admin/pkg/metrics"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

const (
	FormName = "add_record"

	// DefaultHistoryPatient is selected when the history tab opens.
	DefaultHistoryPatient = "P001"
)

type MedicalService interface {
	List(ctx context.Context, filter model.ListFilter) (model.ListResult[model.MedicalRecord], error)
	Get(ctx context.Context, id int) (*model.MedicalRecord, error)
	History(ctx context.Context, patientID string) (*model.PatientHistory, error)
	SubmitForm(ctx context.Context, req model.CreateRecordRequest) model.FormReceipt[model.CreateRecordRequest]
	RejectForm(ctx context.Context, errs []validator.FieldError)
}

type Service struct {
	repo    repository.MedicalRecordRepository
	auditor *audit.Service
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewService(repo repository.MedicalRecordRepository, auditor *audit.Service, log *logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		auditor: auditor,
		log:     log.With("medical"),
		metrics: m,
	}
}

// Matches applies the search term to the patient name, patient id and
// description.
func Matches(r model.MedicalRecord, filter model.ListFilter) bool {
	return search.MatchAny(filter.Search, r.PatientName, r.PatientID, r.Description)
}

func (s *Service) List(ctx context.Context, filter model.ListFilter) (model.ListResult[model.MedicalRecord], error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return model.ListResult[model.MedicalRecord]{}, fmt.Errorf("failed to list medical records: %w", err)
	}

	filtered := search.Filter(records, func(r model.MedicalRecord) bool {
		return Matches(r, filter)
	})

	s.log.Debug("records filtered", "search", filter.Search, "count", len(filtered))
	s.metrics.ObserveList(model.SectionRecords, len(filtered))
	return model.NewListResult(filtered), nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.MedicalRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}

	s.auditor.Log(ctx, audit.ActionView, "medical_record", strconv.Itoa(id), nil)
	return record, nil
}

// History builds the Patient History tab. The selector lists every patient
// that owns a record; a known patient without timeline entries gets an
// empty timeline, an unknown one is not found.
func (s *Service) History(ctx context.Context, patientID string) (*model.PatientHistory, error) {
	if patientID == "" {
		patientID = DefaultHistoryPatient
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}

	refs := patientRefs(records)
	var selected *model.PatientRef
	for i := range refs {
		if refs[i].ID == patientID {
			selected = &refs[i]
			break
		}
	}
	if selected == nil {
		return nil, errors.NotFound("patient "+patientID, nil)
	}

	entries, err := s.repo.History(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient history: %w", err)
	}

	s.auditor.Log(ctx, audit.ActionView, "patient_history", patientID, nil)
	return &model.PatientHistory{
		Patient:  *selected,
		Patients: refs,
		Entries:  entries,
	}, nil
}

// patientRefs returns one selector option per distinct patient id, in the
// order the records list them.
func patientRefs(records []model.MedicalRecord) []model.PatientRef {
	seen := make(map[string]bool, len(records))
	refs := make([]model.PatientRef, 0, len(records))
	for _, r := range records {
		if seen[r.PatientID] {
			continue
		}
		seen[r.PatientID] = true
		refs = append(refs, model.PatientRef{ID: r.PatientID, Name: r.PatientName})
	}
	return refs
}

// SubmitForm accepts the Add Record draft. Attachments are not part of the
// form and nothing is stored.
func (s *Service) SubmitForm(ctx context.Context, req model.CreateRecordRequest) model.FormReceipt[model.CreateRecordRequest] {
	s.auditor.Log(ctx, audit.ActionSubmit, "medical_record", FormName, nil)
	s.metrics.ObserveForm(FormName, metrics.OutcomeAccepted)
	return model.FormReceipt[model.CreateRecordRequest]{Form: FormName, Accepted: true, Draft: req}
}

// RejectForm records a draft that failed its field checks.
func (s *Service) RejectForm(ctx context.Context, errs []validator.FieldError) {
	s.auditor.Reject(ctx, "medical_record", FormName, errs)
	s.metrics.ObserveForm(FormName, metrics.OutcomeInvalid)
}
