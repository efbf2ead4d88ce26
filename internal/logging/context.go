package logging

import "context"

type contextKey struct{}

// WithLogData attaches a LogData to the context so handlers deeper in the
// call chain can record data items and timings against the request log line.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, contextKey{}, logData)
}

// GetLogData returns the LogData carried by the context, or nil when the
// request did not pass through the logging wrapper (e.g. in tests).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(contextKey{}).(*LogData)
	return logData
}
