package logger

import (
	"log/slog"
	"os"
)

var base = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	slog.SetDefault(base)
	base.Info("logger initialized")
}

func Info(msg string, args ...any) {
	base.Info(msg, args...)
}

func Error(msg string, args ...any) {
	base.Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	base.Error(msg, args...)
	os.Exit(1)
}

// With returns a logger carrying additional fields for per-request use.
func With(args ...any) *slog.Logger {
	return base.With(args...)
}
