package grpc

import (
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	"mycard-service/internal/api/grpc/interceptors"
)

// NewServer создает и настраивает gRPC сервер с интерцепторами и health-сервисом
func NewServer(handler CardsServiceServer, logger *zap.Logger) *grpc.Server {
	// Порядок интерцепторов: Logger видит и запросы, отклоненные на валидации
	grpcServer := grpc.NewServer(
		grpc.MaxConcurrentStreams(25),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     30 * time.Minute,
			MaxConnectionAge:      1 * time.Hour,
			MaxConnectionAgeGrace: 5 * time.Second,
			Time:                  10 * time.Minute,
			Timeout:               20 * time.Second,
		}),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggerUnaryInterceptor(logger),
			interceptors.ValidateUnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamInterceptor(logger),
		),
	)

	RegisterCardsServiceServer(grpcServer, handler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	logger.Info("registered gRPC services", zap.String("service", ServiceName))

	return grpcServer
}
