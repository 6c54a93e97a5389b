package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/pkg/errors"
)

type patientRepository struct {
	patients []model.Patient
}

func NewPatientRepository(ds *Dataset) repository.PatientRepository {
	return &patientRepository{patients: ds.Patients}
}

func (r *patientRepository) List(ctx context.Context) ([]model.Patient, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return cloneSlice(r.patients), nil
}

func (r *patientRepository) Get(ctx context.Context, id int) (*model.Patient, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	for _, p := range r.patients {
		if p.ID == id {
			patient := p
			return &patient, nil
		}
	}
	return nil, errors.NotFound("patient", fmt.Errorf("id %d", id))
}
