package service

import (
	"errors"
	"fmt"
)

// ErrAuth is the common cause of every credential failure. The HTTP layer
// answers all of them with the same generic 401 body; the specific reason is
// only logged.
var ErrAuth = errors.New("auth error")

// Credential failures returned by [AuthService.VerifyToken]. Each one wraps
// [ErrAuth].
var (
	// ErrMissingCredential: no Authorization header, or nothing after the
	// "Bearer " prefix.
	ErrMissingCredential = fmt.Errorf("%w: missing credential", ErrAuth)

	// ErrMalformedCredential: the header or the token is not a well-formed
	// signed token (bad encoding, wrong scheme, missing user_id, foreign
	// issuer, not yet valid).
	ErrMalformedCredential = fmt.Errorf("%w: malformed credential", ErrAuth)

	// ErrExpiredCredential: the token is well-formed but past its exp claim.
	ErrExpiredCredential = fmt.Errorf("%w: expired credential", ErrAuth)

	// ErrInvalidSignature: the token does not verify against the shared
	// secret, or is signed with a non-HMAC algorithm.
	ErrInvalidSignature = fmt.Errorf("%w: invalid signature", ErrAuth)
)

var (
	// ErrEmptyTokenSignKey is a fatal misconfiguration: with no secret no
	// token can ever be verified.
	ErrEmptyTokenSignKey = errors.New("token sign key is empty")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrWrongCredentials is returned by login for an unknown email or a
	// password that does not match. It wraps [ErrAuth] so both cases get the
	// same 401 answer.
	ErrWrongCredentials = fmt.Errorf("%w: wrong email or password", ErrAuth)

	// ErrForbidden is returned when the caller acts on a resource owned by
	// another user.
	ErrForbidden = errors.New("resource belongs to another user")
)
