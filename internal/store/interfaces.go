package store

import (
	"context"

	"github.com/MKhiriev/go-post-gateway/models"
)

//go:generate mockgen -destination=../mock/mock_store.go -package=mock . UserRepository,PostRepository,ImageStorage

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.AccountUpdate) (models.User, error)
}

// PostRepository persists posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)
	DeletePost(ctx context.Context, postID, userID string) error
}

// ImageStorage keeps uploaded images on disk and maps them to public paths
// under [ImagesURLPrefix].
type ImageStorage interface {
	// SaveImage stores the upload and returns its public path.
	SaveImage(ctx context.Context, upload models.Upload) (string, error)

	// DeleteImage removes the image behind a public path returned by SaveImage.
	DeleteImage(ctx context.Context, publicPath string) error

	// Dir returns the directory the images are stored in.
	Dir() string
}
