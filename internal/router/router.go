package router

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/noill-admin/internal/handler"
	"github.com/jwalitptl/noill-admin/internal/middleware"
	"github.com/jwalitptl/noill-admin/internal/model"
	apperrors "github.com/jwalitptl/noill-admin/pkg/errors"
)

// Screen is a navigation section served both as JSON under /api/v1 and as
// an HTML page.
type Screen interface {
	RegisterRoutes(*gin.RouterGroup)
	RegisterPages(*gin.RouterGroup)
	Page(*gin.Context)
}

type Router struct {
	engine  *gin.Engine
	h       *handler.Handler
	screens map[string]Screen
	config  RouterConfig
	metrics *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type RouterConfig struct {
	Mode           string
	Timeout        time.Duration
	// TrustedProxies may set X-Forwarded-For; empty trusts none and keys
	// clients by their remote address.
	TrustedProxies []string
	RateLimit      bool
	Rate           rate.Limit
	RateBurst      int
	CORSConfig     middleware.CORSConfig
	Cache          bool
	CacheConfig    middleware.ResponseCacheConfig
	Metrics        bool
	MetricsPrefix  string
	MetricsPath    string
	// Registerer receives the router metrics; nil leaves them unregistered.
	Registerer     prometheus.Registerer
}

// NewRouter assembles the engine. screens is keyed by navigation section
// id; html renders the pages.
func NewRouter(h *handler.Handler, screens map[string]Screen, html render.HTMLRender, config RouterConfig) (*Router, error) {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}

	engine := gin.New()
	// Handlers pass the gin context to services; with the fallback its
	// Done and Err follow the request context and its deadline.
	engine.ContextWithFallback = true
	engine.HTMLRender = html
	if err := engine.SetTrustedProxies(config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	middleware.RegisterValidation()

	r := &Router{
		engine:  engine,
		h:       h,
		screens: screens,
		config:  config,
		metrics: initRouterMetrics(config.MetricsPrefix, config.Registerer),
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.Compress(middleware.DefaultCompressConfig()),
		middleware.SizeLimit(middleware.DefaultSizeLimitConfig()),
	)

	if config.Timeout > 0 {
		engine.Use(middleware.Timeout(middleware.TimeoutConfig{Duration: config.Timeout}))
	}

	if config.RateLimit {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.Rate,
			Burst: config.RateBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	engine.NoRoute(r.notFound)
	return r, nil
}

func (r *Router) Setup() {
	if r.config.Metrics {
		path := r.config.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, r.h.MetricsHandler())
	}

	api := r.engine.Group("/api/v1")
	api.Use(
		middleware.Version(middleware.DefaultVersionConfig()),
		middleware.CORS(r.config.CORSConfig),
	)
	r.h.RegisterRoutes(api)

	data := api.Group("")
	data.Use(middleware.Cache(middleware.NoStoreConfig()))
	if r.config.Cache {
		data.Use(middleware.NewResponseCache(r.config.CacheConfig).Handler())
	}
	for _, s := range r.screens {
		s.RegisterRoutes(data)
	}

	pages := r.engine.Group("")
	pages.Use(middleware.Cache(middleware.NoStoreConfig()))
	pages.GET("/", r.home)
	for _, s := range r.screens {
		s.RegisterPages(pages)
	}
}

// home renders the section named by ?tab=, the dashboard by default.
func (r *Router) home(c *gin.Context) {
	section := model.ResolveSection(c.Query("tab"))
	s, ok := r.screens[section.ID]
	if !ok {
		r.notFound(c)
		return
	}
	s.Page(c)
}

func (r *Router) notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "route not found",
			TraceID: middleware.GetRequestID(c),
		})
		return
	}
	handler.RenderError(c, model.SectionDashboard, apperrors.NotFound("page "+c.Request.URL.Path, nil))
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// ServeHTTP makes the router usable directly as an http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// Metrics initialization and middleware
func initRouterMetrics(prefix string, reg prometheus.Registerer) *routerMetrics {
	if prefix == "" {
		prefix = "noill"
	}
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	}
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Unmatched paths share one label to keep cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		code := c.Writer.Status()
		status := strconv.Itoa(code)

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		switch {
		case code >= 500:
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "server").Inc()
		case code >= 400:
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "client").Inc()
		}
	}
}
