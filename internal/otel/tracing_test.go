package otel

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
)

func TestNewSampler(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "always_on", want: trace.AlwaysSample().Description()},
		{name: "always_off", want: trace.NeverSample().Description()},
		{name: "traceidratio", arg: "0.25", want: trace.TraceIDRatioBased(0.25).Description()},
		{name: "traceidratio", arg: "not-a-number", want: trace.TraceIDRatioBased(1).Description()},
		{name: "parentbased_always_off", want: trace.ParentBased(trace.NeverSample()).Description()},
		{name: "parentbased_traceidratio", arg: "0.5", want: trace.ParentBased(trace.TraceIDRatioBased(0.5)).Description()},
		{name: "bogus", want: trace.ParentBased(trace.AlwaysSample()).Description()},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, newSampler(tt.name, tt.arg).Description())
		})
	}
}

func TestInit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		t.Setenv("OTEL_SDK_DISABLED", "true")
		var buf bytes.Buffer

		shutdown, err := Init(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
		assert.Contains(t, buf.String(), `"tracing_enabled":false`)
	})

	t.Run("unsupported protocol degrades", func(t *testing.T) {
		t.Setenv("OTEL_SDK_DISABLED", "false")
		t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
		var buf bytes.Buffer

		shutdown, err := Init(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
		assert.Contains(t, buf.String(), "tracing_init_failed")
	})
}
