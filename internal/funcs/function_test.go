package funcs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idz2_roots/internal/real"
)

func eval(t *testing.T, expr string, x float64) float64 {
	t.Helper()
	f, err := NewEvalFunc(expr)
	require.NoError(t, err)
	y, err := f.Eval(real.Float64(x))
	require.NoError(t, err)
	return y.Float64()
}

func TestNewEvalFunc(t *testing.T) {
	assert.InDelta(t, 4.0, eval(t, "x*x*x - x - 2", 2), 1e-12)
	assert.InDelta(t, -0.125, eval(t, "x*x*x - x - 2", 1.5), 1e-12)
	assert.InDelta(t, math.Sin(3), eval(t, "sin(x)", 3), 1e-15)
	assert.InDelta(t, 8.0, eval(t, "pow(x, 3)", 2), 1e-12)
	assert.InDelta(t, 2.0, eval(t, "sqrt(abs(x))", -4), 1e-12)
}

// запятая между цифрами — десятичный разделитель, запятая между
// аргументами функции остаётся разделителем аргументов
func TestCommaNormalization(t *testing.T) {
	assert.InDelta(t, 1.0, eval(t, "x + 0,5", 0.5), 1e-12)
	assert.InDelta(t, 8.0, eval(t, "pow(x, 3)", 2), 1e-12)
	assert.InDelta(t, 7.125, eval(t, "pow(x, 2) + 0,875", 2.5), 1e-12)
}

func TestBadExpression(t *testing.T) {
	_, err := NewEvalFunc("x +* 2")
	require.Error(t, err)
}

// выражение обязано вернуть число
func TestNonNumericResult(t *testing.T) {
	f, err := NewEvalFunc("x > 1")
	require.NoError(t, err)
	y, err := f.Eval(real.Float64(2))
	require.Error(t, err)
	assert.True(t, y.IsNaN())
}
