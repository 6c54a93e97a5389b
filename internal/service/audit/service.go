package audit

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/noill-admin/pkg/logger"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

// Actions written to the access log.
const (
	ActionView   = "view"
	ActionSubmit = "submit"
	ActionReject = "reject"
)

// Service writes an access log line whenever a single clinical or billing
// record is opened or a dialog draft is submitted. Nothing is stored; the
// log stream is the trail.
type Service struct {
	log *logger.Logger
}

func NewService(log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{log: log.With("audit")}
}

type LogOptions struct {
	IPAddress string
	UserAgent string
	RequestID string
}

// Log records action on entityType/entityID.
func (s *Service) Log(ctx context.Context, action, entityType, entityID string, opts *LogOptions) {
	if s == nil {
		return
	}
	s.entry(ctx, action, entityType, entityID, opts).Info("access")
}

// Reject records a dialog draft that failed its field checks, naming the
// offending fields.
func (s *Service) Reject(ctx context.Context, entityType, form string, errs []validator.FieldError) {
	if s == nil {
		return
	}
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	s.entry(ctx, ActionReject, entityType, form, nil).Warn("form draft rejected", "fields", fields)
}

func (s *Service) entry(ctx context.Context, action, entityType, entityID string, opts *LogOptions) *logger.Logger {
	if opts == nil {
		opts = &LogOptions{}
	}

	// Fill request details from the gin context when the caller passed it.
	if gc, ok := ctx.(*gin.Context); ok {
		if opts.IPAddress == "" {
			opts.IPAddress = gc.ClientIP()
			opts.UserAgent = gc.GetHeader("User-Agent")
		}
		if opts.RequestID == "" {
			opts.RequestID = gc.GetString("request_id")
		}
	}

	return s.log.WithFields(map[string]interface{}{
		"action":      action,
		"entity_type": entityType,
		"entity_id":   entityID,
		"ip_address":  opts.IPAddress,
		"user_agent":  opts.UserAgent,
		"request_id":  opts.RequestID,
	})
}
