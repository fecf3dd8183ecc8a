package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldFolderID is the standardized structured logging key for folder identifiers.
	FieldFolderID = "folder_id"
	// FieldUsername is the standardized structured logging key for usernames.
	FieldUsername = "username"
	// FieldOperationID is the standardized structured logging key for the
	// correlation id of one administrative invocation.
	FieldOperationID = "op_id"
)

type operationIDKey struct{}

// WithOperationID returns a context carrying a fresh correlation id for one
// administrative invocation.
func WithOperationID(ctx context.Context) context.Context {
	return context.WithValue(ctx, operationIDKey{}, uuid.NewString())
}

// OperationIDFromContext extracts the correlation id, if any.
func OperationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(operationIDKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := OperationIDFromContext(ctx); ok {
		logger = logger.With(slog.String(FieldOperationID, id))
	}
	return logger
}
