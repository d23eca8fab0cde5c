package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/i-shreyansh/portfolio/internal/config"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

func TestNewTracerProvider_DisabledWithoutEndpoint(t *testing.T) {
	tp, err := NewTracerProvider(config.Config{}, logger.NewNopLogger(), "portfolio")
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewSampler(t *testing.T) {
	assert.Contains(t, newSampler(1).Description(), "root:AlwaysOnSampler")
	assert.Contains(t, newSampler(2).Description(), "root:AlwaysOnSampler")
	assert.Contains(t, newSampler(0).Description(), "root:AlwaysOffSampler")
	assert.Contains(t, newSampler(0.25).Description(), "root:TraceIDRatioBased{0.25}")
}

func TestNewResource(t *testing.T) {
	res, err := newResource("portfolio", "production")
	require.NoError(t, err)

	name, ok := res.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "portfolio", name.AsString())

	env, ok := res.Set().Value(semconv.DeploymentEnvironmentNameKey)
	require.True(t, ok)
	assert.Equal(t, "production", env.AsString())
}
