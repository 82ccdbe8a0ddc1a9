// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package channel

import "log/slog"

type (
	// Error represents a structured channel error.
	Error struct {
		Message string
		Kind    Kind

		PropertyName  string
		PropertyValue any
	}

	// Kind defines the type of error being returned.
	Kind int
)

// The following are the defined error kinds.
const (
	// InvalidCapacity is returned by New when the requested capacity is not
	// positive. No channel is created.
	InvalidCapacity Kind = iota

	// ClosedChannel is returned by Send when the channel is closed before
	// the value could be enqueued. The value is discarded.
	ClosedChannel
)

// Error returns the error as a string.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind, so callers can
// match with errors.Is(err, &channel.Error{Kind: channel.ClosedChannel}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Attrs returns additional error attributes for slog.
func (e *Error) Attrs() []slog.Attr {
	a := []slog.Attr{slog.String("kind", e.Kind.String())}
	if e.PropertyName != "" {
		a = append(a,
			slog.String("property_name", e.PropertyName),
			slog.Any("property_value", e.PropertyValue),
		)
	}
	return a
}

func (k Kind) String() string {
	switch k {
	case InvalidCapacity:
		return "invalid capacity"
	case ClosedChannel:
		return "closed channel"
	default:
		return "unknown"
	}
}
