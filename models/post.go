package models

import "time"

// Post is a message published by a user, optionally with an image.
type Post struct {
	// PostID is the unique identifier of the post (UUIDv7 text form).
	PostID string `json:"post_id"`

	// UserID is the author of the post.
	UserID string `json:"user_id"`

	// Username is the author's display name, filled on reads.
	Username string `json:"username,omitempty"`

	// Message is the text body of the post.
	Message string `json:"message"`

	// Image is the public path of the attached image, if any.
	Image string `json:"image,omitempty"`

	// CreatedAt is the publication timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// NewPost is the payload accepted by POST /posts.
type NewPost struct {
	Message string `json:"message"`
}
