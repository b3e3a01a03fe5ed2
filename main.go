package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/db"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	provider := words.NewProvider(os.Getenv("DICT_DIR"))
	// Warm the default dictionary so a bad DICT_DIR fails at boot, not on
	// the first request.
	if _, err := provider.Load(words.DefaultName); err != nil {
		log.Fatal().Err(err).Msg("failed to load default dictionary")
	}

	d, err := db.Open(getEnv("SQLITE_PATH", "./data/solver.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := db.Migrate(d); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	srv := httpserver.New(provider, d)
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Msg("starting wordle-solver")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
