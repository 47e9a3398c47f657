package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavsangichetty/portfolio/internal/config"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

func TestEnabled(t *testing.T) {
	var cfg config.Config
	assert.False(t, Enabled(cfg))

	cfg.Tracing.OTLPEndpoint = "localhost:4317"
	assert.True(t, Enabled(cfg))
}

func TestNewTracerProviderIsLazy(t *testing.T) {
	var cfg config.Config
	cfg.Tracing.OTLPEndpoint = "localhost:4317"
	cfg.Tracing.ServiceName = "portfolio-test"

	tp, err := NewTracerProvider(cfg, logger.NewNopLogger(), "")
	require.NoError(t, err)
	require.NotNil(t, tp)

	_, span := tp.Tracer("test").Start(context.Background(), "span")
	span.End()
	assert.True(t, span.SpanContext().IsValid())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tp.Shutdown(ctx)
}
