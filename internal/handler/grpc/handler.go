package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// VaultServiceName is the health-check service name that follows storage
// reachability. The empty name reports the process itself.
const VaultServiceName = "vault.Vault"

// Handler is the root gRPC transport handler.
//
// It owns the standard grpc.health.v1 service and keeps the status of
// [VaultServiceName] in line with [service.HealthService].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose vault status starts as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus(VaultServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe asks the health service once and updates the vault status.
func (h *Handler) Probe(ctx context.Context) {
	if h.services == nil || h.services.HealthService == nil {
		return
	}

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Ready(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus(VaultServiceName, status)
}

// Watch probes every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	h.Probe(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING and ignores later probes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogger logs each unary call with its method, duration and error.
func (h *Handler) UnaryLogger() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		event := h.logger.Debug()
		if err != nil {
			event = h.logger.Warn().Err(err)
		}
		event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Send()

		return resp, err
	}
}
