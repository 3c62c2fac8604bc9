package models

import "time"

// User represents an account of the gateway.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 text form).
	UserID string `json:"user_id"`

	// Email is the unique login identifier.
	Email string `json:"email,omitempty"`

	// Username is the public display name.
	Username string `json:"username"`

	// Password holds the plain-text password on input and the bcrypt hash
	// after hashing. It is never serialised in responses.
	Password string `json:"-"`

	// Image is the public path of the avatar (e.g. "/images/image-1700000000000.png").
	Image string `json:"image,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u stripped of private fields, suitable for
// lookups by other users.
func (u User) Public() User {
	return User{
		UserID:    u.UserID,
		Username:  u.Username,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}

// Credentials is the login payload accepted by POST /tokens.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload accepted by POST /users.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// AccountUpdate is the partial update accepted by PATCH /account.
// Nil fields are left untouched.
type AccountUpdate struct {
	Username *string `json:"username,omitempty"`
	Image    *string `json:"-"`
}
