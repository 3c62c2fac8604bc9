package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-post-gateway/internal/config"
	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/store"
	"github.com/MKhiriev/go-post-gateway/internal/utils"
	"github.com/MKhiriev/go-post-gateway/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
//
// All fields are read-only after construction, so one instance serves any
// number of concurrent requests without locking.
type authService struct {
	// userRepository looks up accounts at login.
	userRepository store.UserRepository

	// tokenSignKey is the shared HMAC secret used to sign and verify tokens.
	tokenSignKey []byte

	// tokenIssuer is the optional "iss" claim. When non-empty, tokens from any
	// other issuer are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService with the secret and token
// parameters from cfg.
//
// Returns [ErrEmptyTokenSignKey] when cfg carries no secret.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrEmptyTokenSignKey
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   []byte(cfg.TokenSignKey),
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrWrongCredentials for an unknown email or a password that does not
//     match the stored hash.
//   - A wrapped repository error for any other lookup failure.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", email).Msg("unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(credentials.Password)); err != nil {
		log.Warn().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed token for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, string(a.tokenSignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates credential and returns the identity it carries.
//
// The call is synchronous and has no side effects, so verifying the same
// token twice yields the same identity. Failures are classified into
// ErrMissingCredential, ErrMalformedCredential, ErrExpiredCredential or
// ErrInvalidSignature, each still wrapping the underlying jwt error for logs.
func (a *authService) VerifyToken(ctx context.Context, credential string) (models.Identity, error) {
	if credential == "" {
		return models.Identity{}, ErrMissingCredential
	}

	token, err := utils.ValidateAndParseJWTToken(credential, string(a.tokenSignKey), a.tokenIssuer)
	if err != nil {
		return models.Identity{}, classifyTokenError(err)
	}

	return models.Identity{UserID: token.UserID}, nil
}

// classifyTokenError maps jwt validation errors onto the credential taxonomy.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpiredCredential, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformedCredential, err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
