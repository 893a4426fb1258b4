package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"VaultKeeper/internal/cli/bootstrap"
	"VaultKeeper/internal/cli/commands"
	"VaultKeeper/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	logger, err := bootstrap.NewLogger(cfg.LogDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	// в обычном режиме CLI пишет в лог только предупреждения и ошибки
	if !cfg.LogDebug {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	}
	commands.SetLogger(logger.Sugar())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	_ = logger.Sync()
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("VaultKeeper CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
