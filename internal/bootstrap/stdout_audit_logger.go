package bootstrap

import (
	"context"
	"time"

	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries as structured log lines on the "audit" logger.
type StdoutAuditLogger struct {
	logger  *zap.Logger
	service string
	now     func() time.Time
}

func NewStdoutAuditLogger(logger *zap.Logger, service string) *StdoutAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &StdoutAuditLogger{
		logger:  logger.Named("audit"),
		service: service,
		now:     time.Now,
	}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("service", l.service),
		zap.Time("timestamp", l.now().UTC()),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	l.logger.Info("audit event", fields...)
}
