package grpcserver

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"lintang/mapagent/pkg/server"
)

const RequestIDHeader = "x-request-id"

// UnaryInterceptor tags the call with a request id, maps service errors to grpc status
// codes and records metrics.
func UnaryInterceptor(m *server.Metrics, logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		requestID := incomingRequestID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))
		method := path.Base(info.FullMethod)

		resp, err := handler(ctx, req)
		if err != nil {
			err = toStatus(err)
		}
		code := status.Code(err)
		m.ObserveRequest(server.TransportGRPC, method, code.String(), time.Since(start))

		if err != nil {
			logger.Warn("grpc request failed",
				"request_id", requestID,
				"method", method,
				"code", code.String(),
				"error", err)
		} else {
			logger.Debug("grpc request",
				"request_id", requestID,
				"method", method,
				"took", time.Since(start))
		}
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDHeader); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}

// toStatus errors that already carry a grpc status pass through. internal faults
// never leak their cause to the client.
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := server.GRPCCode(err)
	if code == codes.Internal || code == codes.Unknown {
		return status.Error(code, "internal server error")
	}
	var serr *server.Error
	if errors.As(err, &serr) {
		return status.Error(code, serr.Message())
	}
	return status.Error(code, err.Error())
}
