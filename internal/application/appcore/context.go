package appcore

import "context"

type contextKey string

const correlationIDKey contextKey = "correlationID"

// WithCorrelationID stores the id of the inbound request. Use cases copy it
// into the metadata of every event they publish.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

// CorrelationID returns the id stored by WithCorrelationID, or "" outside a request.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}
