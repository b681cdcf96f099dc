package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// loggingInterceptor logs every unary call with its duration and the status
// code it resolved to.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	s.logger.Info(ctx, "request processed",
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start).String(),
	)

	return resp, err
}
