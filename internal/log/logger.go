// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package log

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/Azure/iot-operations-sdks/go/channel/internal/wallclock"
)

type (
	// Logger is a wrapper around an slog.Logger with nil checking. Every
	// record carries the attributes it was bound with.
	Logger struct {
		logger *slog.Logger
		attrs  []slog.Attr
	}

	// Attrs represents an object that exposes extra slog attributes to log.
	Attrs interface {
		Attrs() []slog.Attr
	}
)

// Wrap the slog logger.
func Wrap(logger *slog.Logger, attrs ...slog.Attr) Logger {
	return Logger{logger, attrs}
}

// Enabled reports whether a record at the given level would be handled.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.logger != nil && l.logger.Enabled(ctx, level)
}

// Log is designed to build logging wrappers; it should not be called directly.
// See: https://pkg.go.dev/log/slog#hdr-Wrapping_output_methods
func (l *Logger) Log(
	ctx context.Context,
	level slog.Level,
	msg string,
	attrs ...slog.Attr,
) {
	if !l.Enabled(ctx, level) {
		return
	}

	now := wallclock.Instance.Now()
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(now, level, msg, pcs[0])
	r.AddAttrs(l.attrs...)
	r.AddAttrs(attrs...)
	_ = l.logger.Handler().Handle(ctx, r)
}
