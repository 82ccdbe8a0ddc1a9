// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package channel_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/Azure/iot-operations-sdks/go/channel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) (*slog.Logger, func() []map[string]any) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, func() []map[string]any {
		var records []map[string]any
		dec := json.NewDecoder(&buf)
		for dec.More() {
			var r map[string]any
			require.NoError(t, dec.Decode(&r))
			records = append(records, r)
		}
		return records
	}
}

func TestChannel_Logging(t *testing.T) {
	logger, records := captureLogs(t)

	ch, err := channel.New[int](
		2,
		channel.WithName("jobs"),
		channel.WithLogger(logger),
	)
	require.NoError(t, err)

	require.NoError(t, ch.Send(1))
	require.NoError(t, ch.Send(2))
	ch.Close()
	ch.Close()
	require.Error(t, ch.Send(3))

	rs := records()
	require.Len(t, rs, 2)

	require.Equal(t, "channel closed", rs[0]["msg"])
	require.Equal(t, "DEBUG", rs[0]["level"])
	require.Equal(t, "jobs", rs[0]["channel"])
	require.Equal(t, float64(2), rs[0]["pending"])

	require.Equal(t, "send rejected", rs[1]["msg"])
	require.Equal(t, "jobs", rs[1]["channel"])
	require.Equal(t, "closed channel", rs[1]["kind"])
}

func TestChannel_LoggingGeneratedName(t *testing.T) {
	logger, records := captureLogs(t)

	ch, err := channel.New[int](1, channel.WithLogger(logger))
	require.NoError(t, err)
	ch.Close()

	rs := records()
	require.Len(t, rs, 1)

	name, ok := rs[0]["channel"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(name)
	require.NoError(t, err)
}

func TestChannel_OptionsStruct(t *testing.T) {
	logger, records := captureLogs(t)

	ch, err := channel.New[int](1, &channel.Options{
		Name:   "from-struct",
		Logger: logger,
	})
	require.NoError(t, err)
	ch.Close()

	rs := records()
	require.Len(t, rs, 1)
	require.Equal(t, "from-struct", rs[0]["channel"])
}

func TestChannel_NoLogger(t *testing.T) {
	ch, err := channel.New[int](1, channel.WithName("quiet"))
	require.NoError(t, err)

	require.NotPanics(t, func() {
		ch.Close()
		_ = ch.Send(1)
	})
}
