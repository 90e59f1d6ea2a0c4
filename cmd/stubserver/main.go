package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/velib-client/internal/config"
	httpDelivery "github.com/velib-client/internal/delivery/http"
	"github.com/velib-client/internal/delivery/http/handler"
	"github.com/velib-client/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	store := handler.NewStore()
	server := httpDelivery.NewServer(cfg, log, store)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start stub server", zap.Error(err))
		}
	}()

	log.Info("Stub server started", zap.String("address", cfg.GetStubAddr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Stub server shutdown error", zap.Error(err))
	}
}
