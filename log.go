// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package channel

import (
	"context"
	"log/slog"

	"github.com/Azure/iot-operations-sdks/go/channel/internal/log"
	"github.com/google/uuid"
)

type logger struct{ log.Logger }

func newLogger(o *Options) logger {
	if o.Logger == nil {
		return logger{}
	}

	name := o.Name
	if name == "" {
		name = uuid.NewString()
	}
	return logger{log.Wrap(o.Logger, slog.String("channel", name))}
}

func (l *logger) closed(pending int) {
	l.Log(context.Background(), slog.LevelDebug, "channel closed",
		slog.Int("pending", pending),
	)
}

func (l *logger) rejected(err error) {
	var attrs []slog.Attr
	if a, ok := err.(log.Attrs); ok {
		attrs = a.Attrs()
	}
	l.Log(context.Background(), slog.LevelDebug, "send rejected", attrs...)
}
