package models

// Identity is the verified caller of a request. It is created by the token
// gate from a signature-verified token payload and read by protected handlers
// from the request context. Handlers never re-verify it.
type Identity struct {
	// UserID is the "user_id" claim of the verified token.
	UserID string
}

// IsZero reports whether the identity carries no user.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}
