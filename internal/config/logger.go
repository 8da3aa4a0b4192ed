package config

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

var Logger = logrus.New()

func InitLogger(level, format string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}

	Logger.SetOutput(os.Stdout)
	Logger.SetLevel(lvl)

	if format == "text" {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	Logger.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "@timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithContext returns a logger entry tagged with the request id stored in ctx, if any.
func WithContext(ctx context.Context) logrus.FieldLogger {
	entry := logrus.NewEntry(Logger)
	if id := RequestIDFromContext(ctx); id != "" {
		return entry.WithField("request_id", id)
	}
	return entry
}
