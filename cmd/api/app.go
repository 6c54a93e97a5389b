package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/noill-admin/internal/config"
	"github.com/jwalitptl/noill-admin/internal/handler"
	appointmentHandler "github.com/jwalitptl/noill-admin/internal/handler/appointment"
	billingHandler "github.com/jwalitptl/noill-admin/internal/handler/billing"
	dashboardHandler "github.com/jwalitptl/noill-admin/internal/handler/dashboard"
	patientHandler "github.com/jwalitptl/noill-admin/internal/handler/patient"
	recordHandler "github.com/jwalitptl/noill-admin/internal/handler/record"
	staffHandler "github.com/jwalitptl/noill-admin/internal/handler/staff"
	"github.com/jwalitptl/noill-admin/internal/middleware"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository/memory"
	"github.com/jwalitptl/noill-admin/internal/router"
	"github.com/jwalitptl/noill-admin/internal/service/appointment"
	"github.com/jwalitptl/noill-admin/internal/service/audit"
	"github.com/jwalitptl/noill-admin/internal/service/billing"
	"github.com/jwalitptl/noill-admin/internal/service/dashboard"
	"github.com/jwalitptl/noill-admin/internal/service/medical"
	"github.com/jwalitptl/noill-admin/internal/service/patient"
	"github.com/jwalitptl/noill-admin/internal/service/staff"
	"github.com/jwalitptl/noill-admin/internal/view"
	"github.com/jwalitptl/noill-admin/pkg/logger"
	"github.com/jwalitptl/noill-admin/pkg/metrics"
)

// services holds one service per screen over the seeded dataset.
type services struct {
	dashboard   *dashboard.Service
	patient     *patient.Service
	appointment *appointment.Service
	staff       *staff.Service
	medical     *medical.Service
	billing     *billing.Service
}

func newServices(ds *memory.Dataset, log *logger.Logger, m *metrics.Metrics) *services {
	auditor := audit.NewService(log)

	return &services{
		dashboard:   dashboard.NewService(memory.NewDashboardRepository(ds), log, m),
		patient:     patient.NewService(memory.NewPatientRepository(ds), auditor, log, m),
		appointment: appointment.NewService(memory.NewAppointmentRepository(ds), auditor, log, m),
		staff:       staff.NewService(memory.NewStaffRepository(ds), auditor, log, m),
		medical:     medical.NewService(memory.NewMedicalRecordRepository(ds), auditor, log, m),
		billing:     billing.NewService(memory.NewBillingRepository(ds), auditor, log, m),
	}
}

// readiness reports ready once the page templates and the dataset are
// loaded.
func readiness(renderer *view.Renderer, ds *memory.Dataset) handler.ReadyFunc {
	return func() error {
		if err := renderer.Check(); err != nil {
			return err
		}
		return ds.Check()
	}
}

// newRouter wires services, handlers and middleware into a ready router.
// reg receives every metric; pass a fresh registry in tests.
func newRouter(cfg *config.Config, log *logger.Logger, reg *prometheus.Registry) (*router.Router, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, err
	}

	var registerer prometheus.Registerer
	if cfg.Metrics.Enabled && reg != nil {
		registerer = reg
	}
	m := metrics.New(cfg.Metrics.Prefix, registerer)

	ds := memory.Seed()
	svcs := newServices(ds, log, m)
	screens := map[string]router.Screen{
		model.SectionDashboard:    dashboardHandler.NewHandler(svcs.dashboard),
		model.SectionPatients:     patientHandler.NewHandler(svcs.patient),
		model.SectionAppointments: appointmentHandler.NewHandler(svcs.appointment),
		model.SectionStaff:        staffHandler.NewHandler(svcs.staff),
		model.SectionRecords:      recordHandler.NewHandler(svcs.medical),
		model.SectionBilling:      billingHandler.NewHandler(svcs.billing),
	}

	var gatherer prometheus.Gatherer
	if reg != nil {
		gatherer = reg
	}
	h := handler.NewHandler(readiness(renderer, ds), gatherer)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.Origins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.Origins
	}

	r, err := router.NewRouter(h, screens, renderer, router.RouterConfig{
		Mode:           cfg.Server.Mode,
		Timeout:        cfg.Server.RequestTimeout,
		TrustedProxies: cfg.Server.TrustedProxies,
		RateLimit:      cfg.RateLimit.Enabled,
		Rate:           rate.Limit(cfg.RateLimit.RPS),
		RateBurst:      cfg.RateLimit.Burst,
		CORSConfig:     corsCfg,
		Cache:          cfg.Cache.Enabled,
		CacheConfig: middleware.ResponseCacheConfig{
			TTL:             cfg.Cache.TTL,
			CleanupInterval: cfg.Cache.Cleanup,
		},
		Metrics:       cfg.Metrics.Enabled,
		MetricsPrefix: cfg.Metrics.Prefix,
		MetricsPath:   cfg.Metrics.Path,
		Registerer:    registerer,
	})
	if err != nil {
		return nil, err
	}
	r.Setup()
	return r, nil
}
