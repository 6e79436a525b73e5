package main

import (
	"net/http"

	"github.com/rcrt-labs/rcrt-go/internal/config"
	"github.com/rcrt-labs/rcrt-go/internal/receiver"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := config.Load(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	addr := config.ListenAddr()
	logger.Info("webhook receiver listening", zap.String("addr", addr))

	// Serves until the process is killed; the receiver has no shutdown
	// sequence of its own.
	if err := http.ListenAndServe(addr, receiver.NewRouter(logger)); err != nil {
		logger.Fatal("receiver failed", zap.Error(err))
	}
}
