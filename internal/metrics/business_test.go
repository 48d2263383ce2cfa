package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("pseudonym")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	m, err := NewBusinessMetrics(provider.MeterProvider(), "pseudonym")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestBusinessMetrics_Record(t *testing.T) {
	provider, err := NewProvider("pseudonym")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	m, err := NewBusinessMetrics(provider.MeterProvider(), "pseudonym")
	require.NoError(t, err)

	ctx := context.Background()

	// Recording must not panic and must accept any label values
	m.RecordOperation(ctx, "pseudonym", "batch_generate", "success")
	m.RecordOperation(ctx, "pseudonym", "batch_generate", "error")
	m.RecordDuration(ctx, "pseudonym", "batch_generate", 150*time.Millisecond, "success")
	m.RecordEmitted(ctx, "1000", 20)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	m := NewNoOpBusinessMetrics()
	ctx := context.Background()

	// No-op implementation must be safe to call
	m.RecordOperation(ctx, "pseudonym", "batch_generate", "success")
	m.RecordDuration(ctx, "pseudonym", "batch_generate", time.Second, "success")
	m.RecordEmitted(ctx, "1000", 1)
}
