package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/store"
	"github.com/MKhiriev/go-post-gateway/models"
)

type postService struct {
	postRepository store.PostRepository
	imageStorage   store.ImageStorage
	idGenerator    IDGenerator

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, imageStorage store.ImageStorage, idGenerator IDGenerator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		imageStorage:   imageStorage,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// ListPosts returns every post, newest first.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

// CreatePost publishes a post authored by identity. A post needs a non-blank
// message, an image, or both.
func (p *postService) CreatePost(ctx context.Context, identity models.Identity, newPost models.NewPost, image *models.Upload) (models.Post, error) {
	log := logger.FromContext(ctx)

	message := strings.TrimSpace(newPost.Message)
	if message == "" && image == nil {
		log.Error().Msg("empty post provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	post := models.Post{
		PostID:    p.idGenerator.Generate(),
		UserID:    identity.UserID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if image != nil {
		var err error
		if post.Image, err = p.imageStorage.SaveImage(ctx, *image); err != nil {
			log.Err(err).Msg("saving post image failed")
			return models.Post{}, fmt.Errorf("saving post image failed: %w", err)
		}
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("post_id", post.PostID).Msg("post creation failed")
		p.discardImage(ctx, post.Image)
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

// GetPost returns a single post.
func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if strings.TrimSpace(postID) == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}

	return post, nil
}

// DeletePost removes a post owned by identity, together with its image.
//
// Returns ErrForbidden when the post belongs to someone else.
func (p *postService) DeletePost(ctx context.Context, identity models.Identity, postID string) error {
	log := logger.FromContext(ctx)

	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != identity.UserID {
		log.Warn().Str("post_id", postID).Str("owner_id", post.UserID).Msg("attempt to delete foreign post")
		return ErrForbidden
	}

	if err = p.postRepository.DeletePost(ctx, postID, identity.UserID); err != nil {
		log.Err(err).Str("post_id", postID).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	p.discardImage(ctx, post.Image)

	return nil
}

func (p *postService) discardImage(ctx context.Context, image string) {
	if image == "" {
		return
	}
	if err := p.imageStorage.DeleteImage(ctx, image); err != nil {
		logger.FromContext(ctx).Err(err).Str("image", image).Msg("image was not removed")
	}
}
