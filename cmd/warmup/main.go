// warmup primes the backend's cache before a demo session by fetching
// every listed property's detail record. The dashboard itself keeps no
// cache.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"propdash/internal/adapters/backend"
	"propdash/internal/adapters/observability"
	"propdash/internal/app"
	"propdash/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.BackendBase).
		Int("workers", cfg.WarmupWorkers).
		Msg("warmup starting")

	client := backend.New(cfg.BackendBase, cfg.BackendRPS, cfg.BackendTimeout)

	warmed, skipped, err := app.Warm(ctx, client, cfg.WarmupWorkers)
	if err != nil {
		log.Fatal().Err(err).Msg("warmup aborted")
	}
	log.Info().Int("warmed", warmed).Int("skipped", skipped).Msg("warmup completed")
}
