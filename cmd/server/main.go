package main

import (
	"VaultKeeper/internal/cli/bootstrap"
	"VaultKeeper/internal/config"
	"VaultKeeper/internal/handlers"
	"VaultKeeper/internal/middleware"
	"VaultKeeper/internal/repo"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("VaultKeeper server\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	// создаём регистратор zap
	logger, err := bootstrap.NewLogger(cfg.LogDebug)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	//context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	keeper, closeDB, err := bootstrap.OpenKeeper(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to open vault", "error", err)
	}
	defer func() {
		if err := closeDB(); err != nil {
			sugar.Errorw("Failed to close database", "error", err)
		}
	}()

	h := handlers.NewHandler(keeper, sugar)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDSN", repo.RedactDSN(cfg.DatabaseDSN),
		"LogDebug", cfg.LogDebug,
	)

	srv := &http.Server{Addr: addr, Handler: h.Router}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Errorw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
