package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"idz2_roots/internal/server"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запускает веб-сервер с демонстрацией метода",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "путь к YAML-конфигу (необязательно)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := server.LoadConfig(serveConfigPath)
	if err != nil {
		return err
	}

	router := server.NewRouter(c)
	log.Println("Сервер запущен на", c.Addr)
	log.Println("Static files served from:", c.StaticDir)
	return http.ListenAndServe(c.Addr, router)
}
