package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	BackendBase    string
	BackendRPS     int
	BackendTimeout time.Duration
	WarmupWorkers  int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		BackendBase:    env("BACKEND_BASE_URL", "http://localhost:8000"),
		BackendRPS:     atoi("BACKEND_RPS", 10),
		BackendTimeout: time.Duration(atoi("BACKEND_TIMEOUT_SECONDS", 20)) * time.Second,
		WarmupWorkers:  atoi("WARMUP_WORKERS", 4),
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
