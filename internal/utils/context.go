// Package utils provides general-purpose helpers used across the gateway:
// typed context keys for the request identity, JWT issuance and parsing,
// JSON response writing, ID generation and the resty HTTP client wrapper.
package utils

import (
	"context"

	"github.com/MKhiriev/go-post-gateway/models"
)

// identityCtxKey is the unexported key under which the verified
// [models.Identity] is stored. Being a distinct struct type, it cannot collide
// with keys defined by any other package.
type identityCtxKey struct{}

// WithIdentity returns a copy of ctx carrying identity.
//
// Only the token gate calls this, after the token signature was verified.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext retrieves the verified identity from ctx.
//
// Returns ok == false when no identity is attached or it is empty, which for
// a protected handler means it was mounted without the token gate.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(models.Identity)
	if !ok || identity.IsZero() {
		return models.Identity{}, false
	}
	return identity, true
}
