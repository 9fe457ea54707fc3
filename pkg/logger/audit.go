package logger

import (
	"context"
	"time"
)

// Audit actions recorded for presets.
const (
	AuditPresetSaved   = "preset.save"
	AuditPresetDeleted = "preset.delete"
)

// AuditLogger writes audit records for preset changes.
type AuditLogger struct {
	logger *Logger
}

// NewAuditLogger builds a separate JSON logger from config. The caller's
// config is not modified.
func NewAuditLogger(config *Config) (*AuditLogger, error) {
	auditConfig := *config
	auditConfig.Format = "json"

	logger, err := NewLogger(&auditConfig)
	if err != nil {
		return nil, err
	}
	return &AuditLogger{logger: logger}, nil
}

// NewAuditLoggerFrom writes audit records through an existing logger.
func NewAuditLoggerFrom(l *Logger) *AuditLogger {
	return &AuditLogger{logger: l}
}

// LogAction records that actor performed action on resource. Request fields
// stored in ctx are included.
func (a *AuditLogger) LogAction(ctx context.Context, action, resource, actor string, details map[string]interface{}) {
	fields := make(map[string]interface{}, len(details)+5)
	for k, v := range details {
		fields[k] = v
	}
	fields["action"] = action
	fields["resource"] = resource
	fields["audited_at"] = time.Now().UTC().Format(time.RFC3339Nano)
	fields["type"] = "audit"
	if actor != "" {
		fields["actor"] = actor
	}

	a.logger.WithContext(ctx).WithFields(fields).Info("Audit log entry")
}
