package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/pkg/errors"
)

type appointmentRepository struct {
	appointments []model.Appointment
	options      model.AppointmentOptions
}

func NewAppointmentRepository(ds *Dataset) repository.AppointmentRepository {
	return &appointmentRepository{
		appointments: ds.Appointments,
		options: model.AppointmentOptions{
			Doctors:   ds.Doctors,
			TimeSlots: ds.TimeSlots,
			Types:     ds.VisitTypes,
		},
	}
}

func (r *appointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return cloneSlice(r.appointments), nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int) (*model.Appointment, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	for _, a := range r.appointments {
		if a.ID == id {
			appointment := a
			return &appointment, nil
		}
	}
	return nil, errors.NotFound("appointment", fmt.Errorf("id %d", id))
}

func (r *appointmentRepository) Options(ctx context.Context) (*model.AppointmentOptions, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return &model.AppointmentOptions{
		Doctors:   cloneSlice(r.options.Doctors),
		TimeSlots: cloneSlice(r.options.TimeSlots),
		Types:     cloneSlice(r.options.Types),
	}, nil
}
