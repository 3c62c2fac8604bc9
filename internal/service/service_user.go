package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/store"
	"github.com/MKhiriev/go-post-gateway/models"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepository store.UserRepository
	imageStorage   store.ImageStorage
	idGenerator    IDGenerator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, imageStorage store.ImageStorage, idGenerator IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		imageStorage:   imageStorage,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// Register creates a new account. The password is stored as a bcrypt hash and
// the optional avatar is written to the image storage before the row is
// inserted; the file is removed again if the insert fails.
//
// Returns ErrInvalidDataProvided for a missing field or an unparsable email,
// and a wrapped store.ErrEmailAlreadyExists for a duplicate email.
func (u *userService) Register(ctx context.Context, registration models.Registration, avatar *models.Upload) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(registration.Email)
	username := strings.TrimSpace(registration.Username)
	if email == "" || registration.Password == "" || username == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if _, err := mail.ParseAddress(email); err != nil {
		log.Err(err).Str("email", email).Msg("invalid email provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		UserID:    u.idGenerator.Generate(),
		Email:     email,
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now().UTC(),
	}

	if avatar != nil {
		if user.Image, err = u.imageStorage.SaveImage(ctx, *avatar); err != nil {
			log.Err(err).Str("user_id", user.UserID).Msg("saving avatar failed")
			return models.User{}, fmt.Errorf("saving avatar failed: %w", err)
		}
	}

	createdUser, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		u.discardImage(ctx, user.Image)
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetUser returns the account with the given id.
func (u *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if strings.TrimSpace(userID) == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateAccount applies update (and an optional new avatar) to the caller's
// own account.
func (u *userService) UpdateAccount(ctx context.Context, identity models.Identity, update models.AccountUpdate, avatar *models.Upload) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Username != nil {
		trimmed := strings.TrimSpace(*update.Username)
		if trimmed == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		update.Username = &trimmed
	}

	var previousImage string
	if avatar != nil {
		current, err := u.userRepository.FindUserByID(ctx, identity.UserID)
		if err != nil {
			log.Err(err).Str("user_id", identity.UserID).Msg("account search before avatar change failed")
			return models.User{}, fmt.Errorf("account search by id failed: %w", err)
		}
		previousImage = current.Image

		image, err := u.imageStorage.SaveImage(ctx, *avatar)
		if err != nil {
			log.Err(err).Str("user_id", identity.UserID).Msg("saving avatar failed")
			return models.User{}, fmt.Errorf("saving avatar failed: %w", err)
		}
		update.Image = &image
	}

	if update.Username == nil && update.Image == nil {
		return models.User{}, ErrInvalidDataProvided
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, identity.UserID, update)
	if err != nil {
		log.Err(err).Str("user_id", identity.UserID).Msg("account update failed")
		if update.Image != nil {
			u.discardImage(ctx, *update.Image)
		}
		return models.User{}, fmt.Errorf("account update failed: %w", err)
	}

	// the replaced avatar is no longer referenced
	if update.Image != nil && previousImage != *update.Image {
		u.discardImage(ctx, previousImage)
	}

	return updatedUser, nil
}

// discardImage removes an image that no account references any more.
// Failures are only logged.
func (u *userService) discardImage(ctx context.Context, image string) {
	if image == "" {
		return
	}
	if err := u.imageStorage.DeleteImage(ctx, image); err != nil {
		logger.FromContext(ctx).Err(err).Str("image", image).Msg("orphan image was not removed")
	}
}
