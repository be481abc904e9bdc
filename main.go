package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-reviews/cmd"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/tmdb"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/auth"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	tokens, err := auth.NewTokenManager(config.JWT.Secret, config.JWT.Expiry())
	if err != nil {
		logger.Fatal("Failed to create token manager", zap.Error(err))
	}

	movies := tmdb.NewClient(tmdb.Config{
		BaseURL: config.TMDB.BaseURL,
		Token:   config.TMDB.Token,
		Timeout: config.TMDB.Timeout(),
		Breaker: tmdb.DefaultBreakerConfig(),
	}, logger)

	app := wire.Wiring(wire.Deps{
		Repo:      repository.NewRepository(db, logger),
		DB:        db,
		Movies:    movies,
		Tokens:    tokens,
		Passwords: auth.NewPasswordHasher(config.Security.BcryptCost),
	}, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
