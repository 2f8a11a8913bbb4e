package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlab/dcsim/analysis"
	"github.com/voltlab/dcsim/circuit"
)

// TestBatch_MatchesSequential verifies concurrent analysis returns the
// same results as one-by-one calls, in input order.
func TestBatch_MatchesSequential(t *testing.T) {
	circuits := make([]circuit.Circuit, 0, 8)
	for i := 0; i < 8; i++ {
		circuits = append(circuits, ledLoop())
	}

	got, err := analysis.Batch(context.Background(), circuits, nil)
	require.NoError(t, err)
	require.Len(t, got, len(circuits))

	want := analysis.Analyze(circuits[0], nil)
	for i, res := range got {
		assert.Equal(t, want, res, "batch member %d diverged from sequential analysis", i)
	}
}

// TestBatch_Empty handles a zero-length batch.
func TestBatch_Empty(t *testing.T) {
	got, err := analysis.Batch(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestBatch_Canceled surfaces the context error and leaves unstarted
// members nil.
func TestBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before any work starts

	circuits := []circuit.Circuit{ledLoop(), ledLoop()}
	got, err := analysis.Batch(ctx, circuits, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, got, len(circuits), "result slice keeps its shape on cancellation")
}
