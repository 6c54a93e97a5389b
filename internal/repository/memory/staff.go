package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/pkg/errors"
)

type staffRepository struct {
	staff    []model.StaffMember
	schedule []model.ShiftDay
}

func NewStaffRepository(ds *Dataset) repository.StaffRepository {
	return &staffRepository{staff: ds.Staff, schedule: ds.Schedule}
}

func (r *staffRepository) List(ctx context.Context) ([]model.StaffMember, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return cloneSlice(r.staff), nil
}

func (r *staffRepository) Get(ctx context.Context, id int) (*model.StaffMember, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	for _, s := range r.staff {
		if s.ID == id {
			member := s
			return &member, nil
		}
	}
	return nil, errors.NotFound("staff member", fmt.Errorf("id %d", id))
}

func (r *staffRepository) Schedule(ctx context.Context) ([]model.ShiftDay, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return cloneSlice(r.schedule), nil
}
