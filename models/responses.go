package models

// MessageResponse is the generic JSON body used for errors and simple
// acknowledgements, e.g. {"message":"auth error"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by POST /tokens.
type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// PostResponse wraps a single post.
type PostResponse struct {
	Message string `json:"message,omitempty"`
	Post    Post   `json:"post"`
}

// PostsResponse wraps a list of posts.
type PostsResponse struct {
	Posts []Post `json:"posts"`
}
