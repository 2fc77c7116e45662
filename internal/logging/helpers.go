package logging

import (
	"maps"

	"github.com/goliatone/go-campaigns/pkg/interfaces"
)

// WithFields attaches structured fields when the logger implements the
// optional FieldsLogger extension; otherwise the logger is returned unchanged.
// Nil loggers and empty field maps pass through without allocation.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return fieldsLogger.WithFields(copied)
}
