package memory

import (
	"context"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
)

type dashboardRepository struct {
	stats      model.DashboardStats
	activities []model.Activity
	upcoming   []model.UpcomingAppointment
}

func NewDashboardRepository(ds *Dataset) repository.DashboardRepository {
	return &dashboardRepository{
		stats:      ds.Stats,
		activities: ds.Activities,
		upcoming:   ds.Upcoming,
	}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	stats := r.stats
	return &stats, nil
}

func (r *dashboardRepository) RecentActivities(ctx context.Context) ([]model.Activity, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return cloneSlice(r.activities), nil
}

func (r *dashboardRepository) UpcomingAppointments(ctx context.Context) ([]model.UpcomingAppointment, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return cloneSlice(r.upcoming), nil
}
