package checked

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-strided/internal/testutil"
	"github.com/cwbudde/algo-strided/kernel"
)

func TestParallelMatchesSequential(t *testing.T) {
	const n = 10007

	for _, st := range []int{1, 3, -2} {
		src := testutil.DeterministicValues[float64](int64(st+10), -1, 1, 1+(n-1)*max(st, -st))
		base := 0
		if st < 0 {
			base = len(src) - 1
		}

		seqOut := make([]float64, len(src))
		parOut := make([]float64, len(src))

		for _, op := range kernel.UnaryOps() {
			require.NoError(t, Unary(op, Strided(src, base, n, st), Strided(seqOut, base, n, st), WithWorkers(1)))
			require.NoError(t, Unary(op, Strided(src, base, n, st), Strided(parOut, base, n, st),
				WithWorkers(7), WithMinChunk(100)))
			testutil.RequireIdentical(t, parOut, seqOut)
		}

		for _, op := range kernel.ScalarOps() {
			seq := append([]float64(nil), src...)
			par := append([]float64(nil), src...)
			require.NoError(t, ScalarAssign(op, Strided(seq, base, n, st), 0.7, WithWorkers(1)))
			require.NoError(t, ScalarAssign(op, Strided(par, base, n, st), 0.7, WithWorkers(4), WithMinChunk(64)))
			testutil.RequireIdentical(t, par, seq)
		}
	}
}

func TestParallelFloat32Copy(t *testing.T) {
	const n = 5000
	src := testutil.Ramp[float32](0, 1, n)
	seq := make([]float32, n)
	par := make([]float32, n)

	require.NoError(t, Copy(Vec(src), Reversed(seq), WithWorkers(1)))
	require.NoError(t, Copy(Vec(src), Reversed(par), WithWorkers(3), WithMinChunk(10)))
	testutil.RequireIdentical(t, par, seq)
	assert.Equal(t, float32(n-1), par[0])
}

func TestZeroStrideRunsSequentially(t *testing.T) {
	buf := []float64{1}
	v := Strided(buf, 0, 1000, 0)

	require.NoError(t, ScalarAssign(kernel.Add, v, 1, WithWorkers(8), WithMinChunk(1)))
	assert.Equal(t, 1001.0, buf[0])
}

func TestOptions(t *testing.T) {
	def := DefaultConfig()
	assert.GreaterOrEqual(t, def.Workers, 1)
	assert.Equal(t, DefaultMinChunk, def.MinChunk)
	require.NotNil(t, def.Context)

	cfg := ApplyOptions(WithWorkers(3), WithMinChunk(5), nil)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 5, cfg.MinChunk)

	cfg = ApplyOptions(WithWorkers(0), WithMinChunk(-1), WithContext(nil))
	assert.Equal(t, def.Workers, cfg.Workers)
	assert.Equal(t, DefaultMinChunk, cfg.MinChunk)
	assert.NotNil(t, cfg.Context)
}
