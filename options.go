// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package channel

import (
	"log/slog"

	"github.com/Azure/iot-operations-sdks/go/channel/internal"
)

type (
	// Option represents a single channel option.
	Option interface{ channel(*Options) }

	// Options are the resolved channel options.
	Options struct {
		// Name identifies the channel in log records. If a logger is
		// provided without a name, a random one is generated.
		Name string

		// Logger receives debug records for close and rejected sends.
		Logger *slog.Logger
	}

	// WithName sets the name the channel logs under.
	WithName string

	// This option is not used directly; see WithLogger below.
	withLogger struct{ *slog.Logger }
)

// Apply resolves the provided list of options.
func (o *Options) Apply(opts []Option, rest ...Option) {
	for opt := range internal.Apply[Option](opts, rest...) {
		opt.channel(o)
	}
}

func (o *Options) channel(opt *Options) {
	if o != nil {
		*opt = *o
	}
}

func (o WithName) channel(opt *Options) {
	opt.Name = string(o)
}

// WithLogger enables logging with the provided slog logger.
func WithLogger(logger *slog.Logger) Option {
	return withLogger{logger}
}

func (o withLogger) channel(opt *Options) {
	opt.Logger = o.Logger
}
