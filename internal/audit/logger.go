package audit

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Logger writes audit events as structured log entries tagged audit=true.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(
	deviceID string,
	userID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("device_id", deviceID),
		zap.String("action", action),
	}
	if userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}
	if entity != "" {
		fields = append(fields, zap.String("entity", entity), zap.String("entity_id", entityID))
	}

	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		fields = append(fields, zap.String("metadata", string(b)))
	}

	l.log.Info(action, fields...)
	return nil
}
