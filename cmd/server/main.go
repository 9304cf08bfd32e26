package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"flexxit_backend/internal/app/di"
	"flexxit_backend/internal/app/router"
	"flexxit_backend/internal/platform/db"
	jwtmw "flexxit_backend/internal/platform/jwt"
	infraredis "flexxit_backend/internal/platform/redis"
)

const defaultPort = "5001"

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	jwtCfg := jwtmw.LoadConfig()
	if jwtCfg.Secret == "" {
		slog.Error(jwtmw.EnvKeyJWTSecret + " is not set")
		os.Exit(1)
	}

	// db
	gdb, err := db.OpenDB(db.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis is optional. Without it the user store is read directly.
	redisCfg := infraredis.LoadConfig()
	var rdb *redisv9.Client
	if redisCfg.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err = infraredis.NewRedisClient(ctx, redisCfg)
		cancel()
		if err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
			rdb = nil
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	engine, err := di.NewEngine(di.Deps{
		DB:             gdb,
		Redis:          rdb,
		UserCacheTTL:   redisCfg.UserTTL,
		JWT:            jwtCfg,
		Catalog:        di.NewCatalogProvider(),
		AllowedOrigins: router.LoadAllowedOrigins(),
	})
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
