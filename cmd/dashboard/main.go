package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"propdash/internal/adapters/backend"
	server "propdash/internal/adapters/http_server"
	"propdash/internal/adapters/observability"
	"propdash/internal/app"
	"propdash/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(reg)

	// deps
	client := backend.New(cfg.BackendBase, cfg.BackendRPS, cfg.BackendTimeout)
	panels := app.NewPanels(client)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Panels: panels, Backend: client})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("backend", cfg.BackendBase).
		Msg("dashboard listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
