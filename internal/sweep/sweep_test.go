package sweep

import (
	"context"
	"testing"

	"sandbox/internal/sims/sand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBase() sand.Config {
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	cfg.Seed = 7
	return cfg
}

func TestGridProduct(t *testing.T) {
	got := Grid([]float32{0.5, 1}, []float32{4, 8}, []bool{true, false})
	require.Len(t, got, 8)
	assert.Equal(t, Scenario{Gravity: 0.5, MaxVelocity: 4, Alternate: true}, got[0])
	assert.Equal(t, Scenario{Gravity: 1, MaxVelocity: 8, Alternate: false}, got[7])
}

func TestRunSettlesAndSorts(t *testing.T) {
	r := Runner{Base: smallBase(), MaxTicks: 2000, Workers: 2}
	scenarios := Grid([]float32{1, 2}, []float32{4, 8}, []bool{true})

	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)
	require.Len(t, results, len(scenarios))

	for i, res := range results {
		assert.Positive(t, res.Occupied, "test pattern places material")
		if i > 0 && results[i-1].Settled == res.Settled {
			assert.LessOrEqual(t, results[i-1].Ticks, res.Ticks)
		}
	}
}

func TestRunHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Runner{Base: smallBase(), MaxTicks: 10000, Workers: 1}
	_, err := r.Run(ctx, Grid([]float32{0}, []float32{1}, []bool{true}))
	assert.ErrorIs(t, err, context.Canceled)
}
