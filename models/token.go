// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT issued at login.
//
// SignedString holds the compact serialized form (header.payload.signature)
// that clients send back in the "Authorization: Bearer" header.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier carried in the "user_id" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenClaims is the signed payload of every token accepted by the gateway.
//
// Only UserID is required; the registered claims (exp, iat, iss) are validated
// by the JWT parser when present.
type TokenClaims struct {
	// UserID identifies the account the token was issued for.
	UserID ClaimID `json:"user_id"`

	jwt.RegisteredClaims
}

// ClaimID is a user identifier claim that accepts both JSON strings and JSON
// numbers. Numbers are kept exactly as written, so a payload of
// {"user_id": 42} yields ClaimID("42") and large ids keep every digit.
type ClaimID string

// UnmarshalJSON implements [json.Unmarshaler].
func (c *ClaimID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*c = ClaimID(value)
	case json.Number:
		*c = ClaimID(value.String())
	case nil:
		*c = ""
	default:
		return errors.New("user_id claim must be a string or a number")
	}

	return nil
}

// String returns the identifier as plain text.
func (c ClaimID) String() string {
	return string(c)
}
