package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/pcote/learningmachine/internal/auth"
	"github.com/pcote/learningmachine/internal/config"
	"github.com/pcote/learningmachine/internal/handlers"
	"github.com/pcote/learningmachine/internal/logger"
	"github.com/pcote/learningmachine/internal/login"
	"github.com/pcote/learningmachine/internal/router"
	"github.com/pcote/learningmachine/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.New(cfg.Env)

	st, err := store.New(cfg.Database)

	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := st.Migrate(); err != nil {
		appLog.Fatal().Err(err).Msg("failed to migrate database")
	}

	appLog.Info().Str("database", cfg.Database.Name).Msg("connected to the database")

	sessions := auth.New(cfg.Session)
	google := login.New(cfg.Google)

	h := handlers.New(st, sessions, google, appLog)
	r := router.New(h, sessions, cfg.Server.Origins())

	appLog.Info().Str("port", cfg.Server.Port).Msg("starting server")

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		appLog.Fatal().Err(err).Msg("server stopped")
	}
}
