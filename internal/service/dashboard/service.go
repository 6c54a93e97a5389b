package dashboard

import (
	"context"
	"fmt"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository"
	"github.com/jwalitptl/noill-admin/pkg/logger"
	"github.com/jwalitptl/noill-admin/pkg/metrics"
)

type DashboardService interface {
	Get(ctx context.Context) (*model.Dashboard, error)
}

type Service struct {
	repo    repository.DashboardRepository
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewService(repo repository.DashboardRepository, log *logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, log: log.With("dashboard"), metrics: m}
}

// Get assembles the stat cards, the recent activity feed and today's
// upcoming appointments.
func (s *Service) Get(ctx context.Context) (*model.Dashboard, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	activities, err := s.repo.RecentActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activities: %w", err)
	}

	upcoming, err := s.repo.UpcomingAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming appointments: %w", err)
	}

	s.metrics.ObserveList(model.SectionDashboard, len(activities))
	return &model.Dashboard{
		Stats:      *stats,
		Activities: activities,
		Upcoming:   upcoming,
	}, nil
}
