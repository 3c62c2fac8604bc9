// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Response messages. Every auth failure and every 5xx answer carries one of
// these fixed strings so nothing internal leaks to the client.
const (
	authErrorMessage   = "auth error"
	serverErrorMessage = "server error"
	okMessage          = "OK"
)

// Sentinel errors produced while reading request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidRequestBody is returned when a JSON or form body cannot be
	// decoded into the expected payload.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrUnsupportedMediaType is returned for a Content-Type other than JSON,
	// urlencoded or multipart form data.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrRequestTooLarge is returned when the body exceeds the configured
	// upload limit.
	ErrRequestTooLarge = errors.New("request body too large")

	// errNoIdentity means a gated handler was reached without an identity in
	// the context, i.e. the route was registered outside the token gate.
	errNoIdentity = errors.New("request identity is missing")
)
