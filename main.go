// main.go
//
// Entry point for the equation puzzle server: loads .env and config, sets
// up logging, opens and migrates SQLite, loads the equation pool, and
// serves the HTTP API.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/nerdle/internal/config"
	"github.com/robalobadob/nerdle/internal/db"
	"github.com/robalobadob/nerdle/internal/httpserver"
	"github.com/robalobadob/nerdle/internal/pool"
	"github.com/robalobadob/nerdle/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer conn.Close()
	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	p, err := pool.Load(cfg.PoolFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load equation pool")
	}
	log.Info().Int("equations", p.Len()).Str("source", sourceName(cfg.PoolFile)).Msg("equation pool loaded")

	srv := httpserver.New(cfg, store.NewMemoryStore(), conn, p)
	log.Info().Str("port", cfg.Port).Str("dailyTZ", cfg.DailyTZ).Msg("starting server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
