// Package grpc exposes the gateway's health over the standard gRPC health
// checking protocol (grpc.health.v1).
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "post-gateway"

// DefaultProbeInterval is how often the database is probed.
const DefaultProbeInterval = 10 * time.Second

// Pinger is implemented by the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the gRPC health handler.
//
// It keeps the health status in sync with the reachability of the database:
// SERVING while pings succeed, NOT_SERVING otherwise and after Shutdown.
type Handler struct {
	health *health.Server
	pinger Pinger

	probeInterval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler] probing pinger.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health:        health.NewServer(),
		pinger:        pinger,
		probeInterval: DefaultProbeInterval,
		logger:        logger,
	}
}

// Register installs the health service on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe pings the database once and updates the served status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING

	pingCtx, cancel := context.WithTimeout(ctx, h.probeInterval)
	defer cancel()
	if err := h.pinger.PingContext(pingCtx); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	return status
}

// Watch probes the database until ctx is done.
func (h *Handler) Watch(ctx context.Context) {
	h.Probe(ctx)

	ticker := time.NewTicker(h.probeInterval)
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

// Shutdown marks every service NOT_SERVING. Later probes do not change it.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
