package service

import (
	"github.com/MKhiriev/go-post-gateway/internal/config"
	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/store"
	"github.com/MKhiriev/go-post-gateway/internal/utils"
)

type Services struct {
	AuthService AuthService
	UserService UserService
	PostService PostService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	authService, err := NewAuthService(storages.UserRepository, cfg, logger)
	if err != nil {
		return nil, err
	}

	idGenerator := utils.NewUUIDGenerator()

	return &Services{
		AuthService: authService,
		UserService: NewUserService(storages.UserRepository, storages.ImageStorage, idGenerator, logger),
		PostService: NewPostService(storages.PostRepository, storages.ImageStorage, idGenerator, logger),
	}, nil
}
