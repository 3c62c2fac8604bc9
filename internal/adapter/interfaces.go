// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the gateway's HTTP API.
//
// [GatewayAdapter] keeps the bearer token obtained from CreateToken and
// attaches it to every call on a gated route. Non-2xx responses are mapped to
// the sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-post-gateway/models"
)

// GatewayAdapter talks to a running gateway.
type GatewayAdapter interface {
	// SetToken stores the bearer token used by gated calls.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account through POST /users.
	Register(ctx context.Context, registration models.Registration) (models.User, error)

	// CreateToken logs in through POST /tokens and stores the issued token.
	CreateToken(ctx context.Context, credentials models.Credentials) (string, error)

	// Account returns the caller's own account (GET /account).
	Account(ctx context.Context) (models.User, error)

	// ListPosts returns all posts, newest first (GET /posts).
	ListPosts(ctx context.Context) ([]models.Post, error)

	// CreatePost publishes a text post (POST /posts).
	CreatePost(ctx context.Context, post models.NewPost) (models.Post, error)

	// DeletePost removes one of the caller's posts (DELETE /posts/{postID}).
	DeletePost(ctx context.Context, postID string) error
}
