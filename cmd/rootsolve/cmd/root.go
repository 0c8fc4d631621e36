package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rootsolve",
	Short: "Поиск корней методом Брента n-го порядка",
	Long: `Поиск корня f(x) = 0 на интервале со сменой знака.

Метод Брента n-го порядка: брекетинг-интервал сужается догадками
обратной полиномиальной интерполяции с откатом к бисекции.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
