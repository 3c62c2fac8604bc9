package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-gateway/internal/config"
	"github.com/MKhiriev/go-post-gateway/internal/logger"
)

// Storages bundles every persistence component of the gateway.
type Storages struct {
	DB *DB

	UserRepository UserRepository
	PostRepository PostRepository
	ImageStorage   ImageStorage
}

// NewStorages connects to the database, applies migrations and prepares the
// images directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		logger.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	images, err := NewImageFileStorage(cfg.Files, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
		ImageStorage:   images,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
