package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"idz2_roots/internal/solver"
)

var solveFlags methodFlags

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Ищет корень f(x) = 0 на интервале и печатает итерации",
	RunE:  runSolve,
}

func init() {
	addMethodFlags(solveCmd, &solveFlags)
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	fmt.Printf("%4s  %-22s %-22s %-22s %-22s %-12s %3s\n",
		"k", "a", "b", "x", "f(x)", "b-a", "win")

	root, evals, err := runMethod(&solveFlags, func(it solver.Iter) error {
		fmt.Printf("%4d  %-22.16g %-22.16g %-22.16g %-22.16g %-12.4g %3d\n",
			it.K, it.XA, it.XB, it.X, it.FX, it.Len, it.Win)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("корень:     x = %.16g\n", root)
	fmt.Printf("вычислений: %d\n", evals)
	return nil
}
