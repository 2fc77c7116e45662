package logging

import (
	"context"
	"maps"
)

type contextKey string

const contextFieldsKey contextKey = "campaigns.logging.fields"

// ContextWithFields annotates the context with structured logging fields.
// Fields already present on the context are kept and merged with the new
// values, later values winning on key collisions.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}

	existing := ContextFields(ctx)
	merged := make(map[string]any, len(existing)+len(fields))
	maps.Copy(merged, existing)
	maps.Copy(merged, fields)
	return context.WithValue(ctx, contextFieldsKey, merged)
}

// ContextFields returns a copy of the logging fields carried by the context,
// or nil when none were set. Callers may mutate the returned map freely.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}

	fields, ok := ctx.Value(contextFieldsKey).(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}

	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return copied
}
