package interceptors

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// validatable запрос, умеющий проверять сам себя
type validatable interface {
	Validate() error
}

// ValidateUnaryInterceptor вызывает Validate() у запросов, которые его реализуют.
// Если проверка не пройдена, возвращается ошибка с кодом InvalidArgument.
func ValidateUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if v, ok := req.(validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	return handler(ctx, req)
}
