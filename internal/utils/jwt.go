package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-post-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyUserIDClaim is returned when a correctly signed token carries no
// "user_id" claim or an empty one.
var ErrEmptyUserIDClaim = errors.New("token has no user_id claim")

// hmacMethods lists the signing algorithms accepted for the shared secret.
// Any other "alg" header is rejected before the key is used.
var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// GenerateJWTToken creates an HMAC-SHA256 signed token for userID.
//
// The payload carries the "user_id" claim plus iat and exp (now +
// tokenDuration). The "iss" claim is set only when issuer is non-empty.
//
// Returns an error if userID, tokenDuration or signKey is empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("post-gateway", "42", time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		UserID: models.ClaimID(userID),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies tokenString against tokenSignKey and
// extracts the "user_id" claim.
//
// Validation includes:
//   - an HMAC "alg" header (HS256, HS384 or HS512);
//   - the signature;
//   - exp and nbf, when present;
//   - iss, when tokenIssuer is non-empty;
//   - a non-empty "user_id" claim.
//
// Errors from the jwt library are wrapped, so callers can classify them with
// errors.Is against jwt.ErrTokenMalformed, jwt.ErrTokenExpired,
// jwt.ErrTokenSignatureInvalid and friends.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods(hmacMethods)}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, ErrEmptyUserIDClaim
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: claims.UserID.String()}, nil
}
