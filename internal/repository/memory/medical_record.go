package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/pkg/errors"
)

type medicalRecordRepository struct {
	records []model.MedicalRecord
	history []model.HistoryEntry
}

func NewMedicalRecordRepository(ds *Dataset) repository.MedicalRecordRepository {
	return &medicalRecordRepository{records: ds.Records, history: ds.History}
}

func copyRecord(r model.MedicalRecord) model.MedicalRecord {
	r.Files = cloneSlice(r.Files)
	return r
}

func (r *medicalRecordRepository) List(ctx context.Context) ([]model.MedicalRecord, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	out := make([]model.MedicalRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, copyRecord(rec))
	}
	return out, nil
}

func (r *medicalRecordRepository) Get(ctx context.Context, id int) (*model.MedicalRecord, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	for _, rec := range r.records {
		if rec.ID == id {
			record := copyRecord(rec)
			return &record, nil
		}
	}
	return nil, errors.NotFound("medical record", fmt.Errorf("id %d", id))
}

// History returns the timeline of patientID in seed order, newest first.
func (r *medicalRecordRepository) History(ctx context.Context, patientID string) ([]model.HistoryEntry, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	out := make([]model.HistoryEntry, 0)
	for _, e := range r.history {
		if e.PatientID != patientID {
			continue
		}
		if e.Vitals != nil {
			vitals := *e.Vitals
			e.Vitals = &vitals
		}
		out = append(out, e)
	}
	return out, nil
}
