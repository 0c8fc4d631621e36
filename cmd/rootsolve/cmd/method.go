package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"idz2_roots/internal/funcs"
	"idz2_roots/internal/real"
	"idz2_roots/internal/solver"
)

// methodFlags — общие флаги команд solve и plot
type methodFlags struct {
	expr    string
	a, b    float64
	start   float64
	eps     float64
	relEps  float64
	fEps    float64
	order   int
	maxEval int
	side    string
}

func addMethodFlags(c *cobra.Command, mf *methodFlags) {
	c.Flags().StringVar(&mf.expr, "f", "", "выражение f(x), например \"x*x*x - x - 2\"")
	c.Flags().Float64Var(&mf.a, "a", 0, "левый конец интервала")
	c.Flags().Float64Var(&mf.b, "b", 1, "правый конец интервала")
	c.Flags().Float64Var(&mf.start, "start", math.NaN(), "стартовая точка (по умолчанию середина)")
	c.Flags().Float64Var(&mf.eps, "eps", 1e-10, "абсолютная точность по x")
	c.Flags().Float64Var(&mf.relEps, "releps", 0, "относительная точность по x")
	c.Flags().Float64Var(&mf.fEps, "feps", 0, "точность по значению функции")
	c.Flags().IntVar(&mf.order, "order", 5, "максимальный порядок интерполяции")
	c.Flags().IntVar(&mf.maxEval, "max-eval", 200, "лимит вычислений функции")
	c.Flags().StringVar(&mf.side, "side", "any", "сторона решения: any|left|right|below|above")
	_ = c.MarkFlagRequired("f")
}

// runMethod строит функцию и решатель по флагам и ищет корень,
// собирая итерации через onIter.
func runMethod(mf *methodFlags, onIter func(solver.Iter) error) (root float64, evals int, err error) {
	side, ok := solver.ParseAllowedSolution(mf.side)
	if !ok {
		return 0, 0, fmt.Errorf("неизвестная сторона решения: %s", mf.side)
	}

	f, err := funcs.NewEvalFunc(mf.expr)
	if err != nil {
		return 0, 0, err
	}

	sol, err := solver.New(
		real.Float64(mf.relEps),
		real.Float64(mf.eps),
		real.Float64(mf.fEps),
		mf.order,
	)
	if err != nil {
		return 0, 0, err
	}
	sol.OnIter = onIter

	var r real.Float64
	minV, maxV := real.Float64(mf.a), real.Float64(mf.b)
	if math.IsNaN(mf.start) {
		r, err = sol.Solve(mf.maxEval, f, minV, maxV, side)
	} else {
		r, err = sol.SolveFrom(mf.maxEval, f, minV, maxV, real.Float64(mf.start), side)
	}
	if err != nil {
		return 0, sol.Evaluations(), err
	}
	return r.Float64(), sol.Evaluations(), nil
}

// sampleFunc равномерно считает значения f для графика (NaN вне области)
func sampleFunc(expr string, a, b float64, n int) (xs, ys []float64, err error) {
	f, err := funcs.NewEvalFunc(expr)
	if err != nil {
		return nil, nil, err
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	h := (b - a) / float64(n-1)
	for i := 0; i < n; i++ {
		x := a + float64(i)*h
		y, err := f.Eval(real.Float64(x))
		fy := y.Float64()
		if err != nil || math.IsInf(fy, 0) {
			fy = math.NaN()
		}
		xs[i], ys[i] = x, fy
	}
	return xs, ys, nil
}
