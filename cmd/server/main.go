package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"mycard-service/internal/config"
	"mycard-service/internal/logger"
	"mycard-service/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mycard-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Загружаем конфигурацию из файла
	appConfig, err := config.Load(config.FilePath())
	if err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	log, err := logger.New(appConfig.Logger.Level)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting MyCard service",
		zap.Int("port_grpc", appConfig.Server.PortGRPC),
		zap.Int("port_http", appConfig.Server.PortHTTP),
		zap.String("storage_driver", appConfig.Storage.Driver),
	)

	srv, err := server.NewServer(appConfig, log)
	if err != nil {
		return err
	}

	// Отмена контекста по сигналу запускает graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}

	log.Info("MyCard service stopped")
	return nil
}
