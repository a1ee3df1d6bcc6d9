package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dfryer1193/blogposts/blog/application"
	"github.com/dfryer1193/blogposts/blog/domain"
	"github.com/dfryer1193/blogposts/blog/persistence"
	"github.com/dfryer1193/blogposts/internal/config"
	"github.com/dfryer1193/blogposts/internal/middleware"
	"github.com/dfryer1193/blogposts/internal/rest"
	"github.com/dfryer1193/blogposts/shared/db/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg)

	postRepo, closeRepo, err := newPostRepository(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("Failed to initialise post store")
	}
	defer func() {
		if err := closeRepo.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to gracefully close post store")
		}
	}()

	postService := application.NewPostService(postRepo)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(gin.CustomRecovery(middleware.HandlePanics()))
	rest.NewApi(r, rest.NewPostsHandler(postService))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown server")
		return
	}

	log.Info().Msg("Server stopped")
}

func setupLogger(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if cfg.LogLevel > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newPostRepository builds the store selected by cfg along with whatever must be closed on exit
func newPostRepository(cfg config.Config) (domain.PostRepository, io.Closer, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		database := sqlite.NewSQLiteDB(&sqlite.SQLiteConfig{Path: cfg.SQLitePath})
		if err := database.Connect(context.Background()); err != nil {
			return nil, nil, err
		}
		return persistence.NewPostRepository(database.DB()), database, nil
	default:
		return persistence.NewMemoryPostRepository(), nopCloser{}, nil
	}
}
