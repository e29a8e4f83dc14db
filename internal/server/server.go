package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"mycard-service/internal/api/gateway"
	grpcapi "mycard-service/internal/api/grpc"
	"mycard-service/internal/config"
	"mycard-service/internal/repository"
	"mycard-service/internal/repository/file"
	"mycard-service/internal/repository/memory"
	svc "mycard-service/internal/service"
	"mycard-service/internal/service/cards"
)

// Server представляет сервер приложения с gRPC и HTTP API
type Server struct {
	GRPCServer   *grpc.Server
	GRPCListener net.Listener

	HTTPServer   *http.Server
	HTTPListener net.Listener

	// Контекст сервера отменяется при shutdown, чтобы стримы завершились
	// до GracefulStop()
	ctx    context.Context
	cancel context.CancelFunc

	config *config.Config
	logger *zap.Logger
}

// NewServer создает сервер: Repository → Service → Handlers → gRPC/HTTP
func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	repo, err := NewRepository(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	cardService := cards.NewCardService(repo,
		cards.WithEvents(cards.NewEventService()),
		cards.WithLogger(logger),
	)

	return newServer(cfg, cardService, logger)
}

func newServer(cfg *config.Config, cardService svc.CardService, logger *zap.Logger) (*Server, error) {
	grpcAddr := gateway.Addr(cfg.Server.PortGRPC)
	grpcListener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", grpcAddr, err)
	}

	httpAddr := gateway.Addr(cfg.Server.PortHTTP)
	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		grpcListener.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", httpAddr, err)
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())

	handler := grpcapi.NewHandler(cardService, serverCtx)
	router := gateway.NewRouter(cardService, cfg.Gateway, logger)

	return &Server{
		GRPCServer:   grpcapi.NewServer(handler, logger),
		GRPCListener: grpcListener,
		HTTPServer:   gateway.NewServer(httpAddr, router, cfg.Server),
		HTTPListener: httpListener,
		ctx:          serverCtx,
		cancel:       serverCancel,
		config:       cfg,
		logger:       logger,
	}, nil
}

// NewRepository создает хранилище визиток по настройкам
func NewRepository(cfg *config.ConfigStorage, logger *zap.Logger) (repository.CardRepository, error) {
	switch cfg.Driver {
	case config.StorageDriverFile:
		logger.Info("using file repository", zap.String("path", cfg.Path))
		return file.NewRepository(cfg.Path, logger), nil
	case config.StorageDriverMemory:
		logger.Info("using in-memory repository")
		return memory.NewRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Run запускает gRPC и HTTP серверы и блокируется до отмены ctx или ошибки
// одного из серверов, после чего выполняет graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("gRPC server listening", zap.String("addr", s.GRPCListener.Addr().String()))
		if err := s.GRPCServer.Serve(s.GRPCListener); err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.logger.Info("HTTP server listening", zap.String("addr", s.HTTPListener.Addr().String()))
		if err := s.HTTPServer.Serve(s.HTTPListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown выполняет graceful shutdown обоих серверов
func (s *Server) Shutdown() error {
	s.logger.Info("starting graceful shutdown")

	// Отменяем контекст сервера ПЕРЕД GracefulStop(): иначе открытые стримы
	// WatchCards не дадут ему завершиться
	s.cancel()

	shutdownTimeout := time.Duration(s.config.Server.GracefulShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	httpErr := s.HTTPServer.Shutdown(ctx)
	if httpErr != nil {
		s.logger.Warn("HTTP server shutdown failed", zap.Error(httpErr))
	}

	stopped := make(chan struct{})
	go func() {
		s.GRPCServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		s.logger.Info("gRPC server stopped gracefully")
		return httpErr
	case <-ctx.Done():
		s.logger.Warn("graceful shutdown timeout, forcing stop")
		s.GRPCServer.Stop()
		return ctx.Err()
	}
}
