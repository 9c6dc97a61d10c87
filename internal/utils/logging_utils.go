package utils

import (
	"context"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const defaultServiceName = "acronym-finder"

func GenerateTraceId() string {
	return uuid.New().String()
}

// ExtractServiceName returns the service name attached to every log entry.
func ExtractServiceName() string {
	if service := os.Getenv("SERVICE_NAME"); service != "" {
		return service
	}
	return defaultServiceName
}

func logEntry(entry *log.Entry, level, message string) {
	switch level {
	case "debug":
		entry.Debug(message)
	case "info":
		entry.Info(message)
	case "warn":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	case "fatal":
		entry.Fatal(message)
	case "panic":
		entry.Panic(message)
	default:
		entry.Info(message)
	}
}

func LogEntry(entry *log.Entry, level, message string) {
	logEntry(entry, level, message)
}

func LogMessage(level, message string) {
	entry := log.WithFields(log.Fields{
		"service": ExtractServiceName(),
	})

	logEntry(entry, level, message)
}

// LogMessageWithFields logs with the trace id of the request the context belongs to.
// The gin context resolves string keys, so the key's name is used for the lookup.
func LogMessageWithFields(ctx context.Context, level, message string) {
	logEntry(entryFromContext(ctx), level, message)
}

func LogMessageWithFieldsAndError(ctx context.Context, level, message string, err error) {
	logEntry(entryFromContext(ctx).WithError(err), level, message)
}

func entryFromContext(ctx context.Context) *log.Entry {
	traceId, _ := ctx.Value(TraceIdKey.String()).(string)

	return log.WithFields(log.Fields{
		"traceId": traceId,
		"service": ExtractServiceName(),
	})
}
