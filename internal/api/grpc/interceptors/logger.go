package interceptors

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggerUnaryInterceptor логирует каждый unary-запрос:
// метод, итоговый статус и время выполнения
func LoggerUnaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	logger = logger.Named("grpc")

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		logger.Debug("incoming request", zap.String("method", info.FullMethod))

		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)

		if err != nil {
			st := status.Convert(err)
			logger.Warn("request failed",
				zap.String("method", info.FullMethod),
				zap.String("code", st.Code().String()),
				zap.String("message", st.Message()),
				zap.Duration("duration", duration),
			)
			return resp, err
		}

		logger.Info("request completed",
			zap.String("method", info.FullMethod),
			zap.Duration("duration", duration),
		)
		return resp, nil
	}
}
