package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idz2_roots/internal/solver"
)

func sampleData() (xs, ys []float64, iters []solver.Iter) {
	for i := 0; i <= 100; i++ {
		x := 1 + float64(i)/100
		xs = append(xs, x)
		ys = append(ys, x*x*x-x-2)
	}
	iters = []solver.Iter{
		{K: 1, XA: 1, XB: 1.6, X: 1.6, FX: 0.496, Len: 0.6, Win: 3},
		{K: 2, XA: 1.5, XB: 1.6, X: 1.5, FX: -0.125, Len: 0.1, Win: 3},
	}
	return xs, ys, iters
}

func TestConvergencePNG(t *testing.T) {
	xs, ys, iters := sampleData()

	var buf bytes.Buffer
	require.NoError(t, Convergence(&buf, "x*x*x - x - 2", xs, ys, iters, 1.5213797068))
	// сигнатура PNG
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

// NaN-точки просто выбрасываются, ошибки быть не должно
func TestConvergenceSkipsNaN(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{math.NaN(), 1, math.Inf(1), -1}
	var buf bytes.Buffer
	require.NoError(t, Convergence(&buf, "f", xs, ys, nil, math.NaN()))
	assert.NotZero(t, buf.Len())
}

func TestConvergenceFile(t *testing.T) {
	xs, ys, iters := sampleData()
	path := filepath.Join(t.TempDir(), "root.png")
	require.NoError(t, ConvergenceFile(path, "test", xs, ys, iters, 1.52))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, st.Size())
}
