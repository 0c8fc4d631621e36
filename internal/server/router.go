package server

import (
	"net/http"
	"path/filepath"

	"idz2_roots/internal/sse"
)

var (
	cfg = DefaultConfig()
	hub = sse.NewHub()
)

func NewRouter(c Config) http.Handler {
	cfg = c

	mux := http.NewServeMux()

	// API эндпоинты
	mux.HandleFunc("/start", StartRun)
	mux.HandleFunc("/stop", StopRun)
	mux.HandleFunc("/stream", Stream)
	mux.HandleFunc("/export", ExportCSV)
	mux.HandleFunc("/plot", PlotPNG)

	// статика
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	})
	mux.HandleFunc("/help", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "help.html"))
	})

	return mux
}
