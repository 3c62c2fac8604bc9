package service

import (
	"context"

	"github.com/MKhiriev/go-post-gateway/models"
)

//go:generate mockgen -destination=../mock/mock_service.go -package=mock . AuthService,UserService,PostService,IDGenerator

// AuthService issues tokens at login and verifies them for the token gate.
type AuthService interface {
	// Login checks the credentials and returns the matching user.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CreateToken issues a signed token carrying user.UserID.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// VerifyToken checks credential against the shared secret and returns the
	// identity it was issued for. Every failure wraps [ErrAuth].
	VerifyToken(ctx context.Context, credential string) (models.Identity, error)
}

// UserService manages accounts.
type UserService interface {
	Register(ctx context.Context, registration models.Registration, avatar *models.Upload) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateAccount(ctx context.Context, identity models.Identity, update models.AccountUpdate, avatar *models.Upload) (models.User, error)
}

// PostService manages posts. Every method that mutates data receives the
// verified caller identity.
type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, identity models.Identity, post models.NewPost, image *models.Upload) (models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	DeletePost(ctx context.Context, identity models.Identity, postID string) error
}

// IDGenerator issues identifiers for new users and posts.
type IDGenerator interface {
	Generate() string
}
