package reqcontext

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRequestID        KeyContext = "request_id"
	keyOperation        KeyContext = "operation"
	keyRequestStartTime KeyContext = "request_start_time"
)

// RequestMetadata holds metadata for a single HTTP request
type RequestMetadata struct {
	RequestID string
	Operation string
	StartTime time.Time
}

// Begin derives a request context carrying the request ID and operation name
func Begin(parentCtx context.Context, requestID, operation string) context.Context {
	ctx := context.WithValue(parentCtx, keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyOperation, operation)
	ctx = context.WithValue(ctx, keyRequestStartTime, time.Now())
	return ctx
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// GetOperation extracts the operation name from context
func GetOperation(ctx context.Context) string {
	op, _ := ctx.Value(keyOperation).(string)
	return op
}

// GetStartTime extracts the request start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyRequestStartTime).(time.Time)
	return startTime, ok
}

// GetMetadata extracts all request metadata from context
func GetMetadata(ctx context.Context) *RequestMetadata {
	startTime, _ := GetStartTime(ctx)
	return &RequestMetadata{
		RequestID: GetRequestID(ctx),
		Operation: GetOperation(ctx),
		StartTime: startTime,
	}
}

// Fields returns zap fields for correlating log lines with the request.
// Missing values are skipped.
func Fields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if id := GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if op := GetOperation(ctx); op != "" {
		fields = append(fields, zap.String("operation", op))
	}
	if start, ok := GetStartTime(ctx); ok {
		fields = append(fields, zap.Duration("elapsed", time.Since(start)))
	}
	return fields
}
