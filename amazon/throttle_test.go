package amazon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateSpacing(t *testing.T) {
	const spacing = 120 * time.Millisecond
	gate := NewGate(spacing)
	ctx := context.Background()

	// First request is never delayed.
	start := time.Now()
	require.NoError(t, gate.Wait(ctx))
	assert.Less(t, time.Since(start), 30*time.Millisecond)

	// Back-to-back requests are separated by at least the spacing,
	// allowing a small scheduling epsilon.
	start = time.Now()
	require.NoError(t, gate.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), spacing-50*time.Millisecond)
}

func TestGateZeroSpacing(t *testing.T) {
	gate := NewGate(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, gate.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 30*time.Millisecond)
}

func TestGateCancellation(t *testing.T) {
	gate := NewGate(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, gate.Wait(ctx))
	err := gate.Wait(ctx)
	assert.Error(t, err)
}
