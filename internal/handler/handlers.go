package handler

import (
	"github.com/MKhiriev/go-post-gateway/internal/config"
	"github.com/MKhiriev/go-post-gateway/internal/handler/grpc"
	"github.com/MKhiriev/go-post-gateway/internal/handler/http"
	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers enabled by cfg.Server. The gRPC
// health handler probes pinger, normally the database connection.
func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
