package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/tuanvumaihuynh/product-inventory/internal/config"
)

func TestInitTracer(t *testing.T) {
	ctx := context.Background()

	t.Run("Should keep the no-op provider without a collector", func(t *testing.T) {
		before := otel.GetTracerProvider()

		cleanup, err := InitTracer(ctx, config.Otel{})
		require.NoError(t, err)

		assert.Equal(t, before, otel.GetTracerProvider())
		assert.NoError(t, cleanup(ctx))
	})

	t.Run("Should install an sdk provider with a collector", func(t *testing.T) {
		before := otel.GetTracerProvider()
		t.Cleanup(func() { otel.SetTracerProvider(before) })

		cleanup, err := InitTracer(ctx, config.Otel{
			CollectorURL: "localhost:4317",
			Insecure:     true,
			TraceIDRatio: 1,
		})
		require.NoError(t, err)

		_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		assert.True(t, ok)
		assert.NoError(t, cleanup(ctx))
	})
}

func TestNewResource(t *testing.T) {
	t.Run("Should default the service name", func(t *testing.T) {
		res := newResource(config.Otel{})

		v, ok := res.Set().Value(attribute.Key("service.name"))
		require.True(t, ok)
		assert.Equal(t, defaultServiceName, v.AsString())
	})

	t.Run("Should carry kubernetes attributes when set", func(t *testing.T) {
		res := newResource(config.Otel{ServiceName: "inv", K8sPodName: "inv-0", K8sNamespace: "shop"})

		v, ok := res.Set().Value(attribute.Key("k8s.pod.name"))
		require.True(t, ok)
		assert.Equal(t, "inv-0", v.AsString())

		v, ok = res.Set().Value(attribute.Key("k8s.namespace.name"))
		require.True(t, ok)
		assert.Equal(t, "shop", v.AsString())
	})
}
