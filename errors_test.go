// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package channel_test

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/Azure/iot-operations-sdks/go/channel"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	_, err := channel.New[int](0)

	require.ErrorIs(t, err, &channel.Error{Kind: channel.InvalidCapacity})
	require.NotErrorIs(t, err, &channel.Error{Kind: channel.ClosedChannel})
	require.EqualError(t, err, "channel capacity must be positive, got 0")

	wrapped := fmt.Errorf("start worker: %w", err)
	require.True(t, errors.Is(wrapped, &channel.Error{Kind: channel.InvalidCapacity}))
}

func attrStrings(attrs []slog.Attr) []string {
	s := make([]string, len(attrs))
	for i, a := range attrs {
		s[i] = a.String()
	}
	return s
}

func TestError_Attrs(t *testing.T) {
	_, err := channel.New[int](-3)

	var e *channel.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, []string{
		"kind=invalid capacity",
		"property_name=capacity",
		"property_value=-3",
	}, attrStrings(e.Attrs()))

	closed := &channel.Error{Kind: channel.ClosedChannel}
	require.Equal(t, []string{
		"kind=closed channel",
	}, attrStrings(closed.Attrs()))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "invalid capacity", channel.InvalidCapacity.String())
	require.Equal(t, "closed channel", channel.ClosedChannel.String())
	require.Equal(t, "unknown", channel.Kind(99).String())
}
