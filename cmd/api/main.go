// @title                       Auth Service API
// @version                     1.0
// @description                 User signup, login and bearer-token access to profile and user listing.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/99minutos/auth-service/docs"
	"github.com/99minutos/auth-service/internal/api"
	"github.com/99minutos/auth-service/internal/api/handler"
	"github.com/99minutos/auth-service/internal/core/service"
	mongodb "github.com/99minutos/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/auth-service/internal/infrastructure/db/redis"
	"github.com/99minutos/auth-service/internal/pkg/config"
	"github.com/99minutos/auth-service/pkg/logger"
)

const serviceName = "auth-service"

// initLogger configures the process logger. A nil cfg, as left by a failed
// config load, falls back to the logger defaults.
func initLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	opts := logger.Options{Service: serviceName, Output: out}
	if cfg != nil {
		opts.Level = cfg.LogLevel
		opts.Pretty = cfg.IsDevelopment()
	}
	logger.Init(opts)
	return logger.Get()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	log := initLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure user indexes")
	}

	readiness := map[string]handler.Pinger{
		"mongodb": mongodb.NewHealthCheck(db),
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		readiness["redis"] = redisdb.NewHealthCheck(rdb)
	}

	tokens, err := service.NewTokenManager(cfg.JWTSecret, service.DefaultTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token manager")
	}
	authService := service.NewAuthService(users, service.NewBcryptHasher(cfg.BcryptCost), tokens, log)

	e := api.NewRouter(api.Deps{
		AuthService: authService,
		Verifier:    tokens,
		Readiness:   readiness,
		Logger:      log,
		Metrics:     cfg.MetricsEnabled,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
}
