package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	postbacksender "github.com/mateuslro/creator-hub/internal/app/postback-sender"
	"github.com/mateuslro/creator-hub/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting postback-sender", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := postbacksender.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize postback-sender", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("postback-sender stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("postback-sender stopped gracefully")
}
