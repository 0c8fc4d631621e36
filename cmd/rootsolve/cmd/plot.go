package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"idz2_roots/internal/chart"
	"idz2_roots/internal/solver"
)

var (
	plotFlags methodFlags
	plotOut   string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Ищет корень и сохраняет график сходимости в PNG",
	RunE:  runPlot,
}

func init() {
	addMethodFlags(plotCmd, &plotFlags)
	plotCmd.Flags().StringVar(&plotOut, "out", "root.png", "файл для PNG")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	var iters []solver.Iter
	root, evals, err := runMethod(&plotFlags, func(it solver.Iter) error {
		iters = append(iters, it)
		return nil
	})
	if err != nil {
		return err
	}

	xs, ys, err := sampleFunc(plotFlags.expr, plotFlags.a, plotFlags.b, 400)
	if err != nil {
		return err
	}

	if err := chart.ConvergenceFile(plotOut, plotFlags.expr, xs, ys, iters, root); err != nil {
		return err
	}

	fmt.Printf("корень x = %.16g (%d вычислений), график: %s\n", root, evals, plotOut)
	return nil
}
