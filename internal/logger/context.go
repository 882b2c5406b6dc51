package logger

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

// WithRequestID stores the request id on ctx. Empty ids are ignored.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithUserID stores the authenticated user id on ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func contextFields(ctx context.Context) []Field {
	var fields []Field
	if id := RequestIDFromContext(ctx); id != "" {
		fields = append(fields, String("request_id", id))
	}
	if id := UserIDFromContext(ctx); id != "" {
		fields = append(fields, String("user_id", id))
	}
	return fields
}

// Ctx returns the default logger tagged with the request and user ids in
// ctx. Services and handlers log through it.
func Ctx(ctx context.Context) Logger {
	return Default().WithContext(ctx)
}
