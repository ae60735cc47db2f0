// Package main Crop Ledger API
//
// @title           Crop Ledger API
// @version         1.0
// @description     API для учёта посевов, расходов и доходов фермерского хозяйства

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey SessionAuth
// @in header
// @name Sessionauth
// @description Токен доступа, с префиксом схемы или без него.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cropledger "github.com/magabrotheeeer/crop-ledger/internal/app/cropledger"
	"github.com/magabrotheeeer/crop-ledger/internal/config"

	_ "github.com/magabrotheeeer/crop-ledger/docs"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting crop-ledger", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cropledger.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("crop-ledger stopped gracefully")
}
