package http

import (
	"github.com/MKhiriev/go-post-gateway/internal/config"
	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/service"
)

type Handler struct {
	services *service.Services

	imagesDir     string
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		imagesDir:     cfg.Storage.Files.ImagesDir,
		maxUploadSize: cfg.Server.MaxUploadSize,
		logger:        logger,
	}
}
