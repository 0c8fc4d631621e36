package chart

import (
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"idz2_roots/internal/solver"
)

// Convergence рисует график функции, пробные точки итераций и найденный
// корень, и пишет PNG в w.
func Convergence(w io.Writer, title string, xs, ys []float64, iters []solver.Iter, root float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	// кривая функции; NaN и Inf точки приходится выбрасывать,
	// иначе plotter вернёт ошибку
	curve := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if i < len(ys) && !math.IsNaN(ys[i]) && !math.IsInf(ys[i], 0) {
			curve = append(curve, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}
	if len(curve) > 1 {
		line, err := plotter.NewLine(curve)
		if err != nil {
			return err
		}
		line.Color = color.RGBA{B: 200, A: 255}
		p.Add(line)
		p.Legend.Add("f(x)", line)
	}

	// пробные точки метода
	pts := make(plotter.XYs, 0, len(iters))
	for _, it := range iters {
		if !math.IsNaN(it.X) && !math.IsNaN(it.FX) && !math.IsInf(it.FX, 0) {
			pts = append(pts, plotter.XY{X: it.X, Y: it.FX})
		}
	}
	if len(pts) > 0 {
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.Color = color.RGBA{R: 200, A: 255}
		p.Add(sc)
		p.Legend.Add("итерации", sc)
	}

	// найденный корень
	if !math.IsNaN(root) {
		mark, err := plotter.NewScatter(plotter.XYs{{X: root, Y: 0}})
		if err != nil {
			return err
		}
		mark.Color = color.RGBA{G: 150, A: 255}
		mark.Radius = vg.Points(4)
		p.Add(mark)
		p.Legend.Add("корень", mark)
	}

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// ConvergenceFile — то же, но в PNG-файл.
func ConvergenceFile(path, title string, xs, ys []float64, iters []solver.Iter, root float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Convergence(f, title, xs, ys, iters, root)
}
