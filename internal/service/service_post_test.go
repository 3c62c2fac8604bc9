package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/mock"
	"github.com/MKhiriev/go-post-gateway/internal/store"
	"github.com/MKhiriev/go-post-gateway/models"
)

func newTestPostSvc(t *testing.T, ctrl *gomock.Controller) (*postService, *mock.MockPostRepository, *mock.MockImageStorage, *mock.MockIDGenerator) {
	t.Helper()

	posts := mock.NewMockPostRepository(ctrl)
	images := mock.NewMockImageStorage(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	return NewPostService(posts, images, ids, logger.Nop()).(*postService), posts, images, ids
}

func TestPostService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posts, _, ids := newTestPostSvc(t, ctrl)

	ids.EXPECT().Generate().Return("p1")
	posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Post) (models.Post, error) {
			return p, nil
		},
	)

	post, err := svc.CreatePost(context.Background(), models.Identity{UserID: "u1"}, models.NewPost{Message: " hello "}, nil)
	require.NoError(t, err)
	assert.Equal(t, "p1", post.PostID)
	assert.Equal(t, "u1", post.UserID)
	assert.Equal(t, "hello", post.Message)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostService_CreatePost_ImageOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posts, images, ids := newTestPostSvc(t, ctrl)

	ids.EXPECT().Generate().Return("p1")
	images.EXPECT().SaveImage(gomock.Any(), gomock.Any()).Return("/images/image-1.png", nil)
	posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Post) (models.Post, error) {
			return p, nil
		},
	)

	post, err := svc.CreatePost(context.Background(), models.Identity{UserID: "u1"}, models.NewPost{}, &models.Upload{FieldName: "image"})
	require.NoError(t, err)
	assert.Equal(t, "/images/image-1.png", post.Image)
}

func TestPostService_CreatePost_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestPostSvc(t, ctrl)

	_, err := svc.CreatePost(context.Background(), models.Identity{UserID: "u1"}, models.NewPost{Message: "   "}, nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPostService_CreatePost_RepositoryErrorRemovesImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posts, images, ids := newTestPostSvc(t, ctrl)

	ids.EXPECT().Generate().Return("p1")
	images.EXPECT().SaveImage(gomock.Any(), gomock.Any()).Return("/images/image-1.png", nil)
	posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, errors.New("db down"))
	images.EXPECT().DeleteImage(gomock.Any(), "/images/image-1.png").Return(store.ErrImageNotFound)

	_, err := svc.CreatePost(context.Background(), models.Identity{UserID: "u1"}, models.NewPost{Message: "hi"}, &models.Upload{FieldName: "image"})
	assert.Error(t, err)
}

func TestPostService_ListPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posts, _, _ := newTestPostSvc(t, ctrl)

	want := []models.Post{{PostID: "p2"}, {PostID: "p1"}}
	posts.EXPECT().ListPosts(gomock.Any()).Return(want, nil)

	got, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostService_DeletePost(t *testing.T) {
	owner := models.Identity{UserID: "u1"}
	stored := models.Post{PostID: "p1", UserID: "u1", Image: "/images/image-1.png"}

	t.Run("owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, posts, images, _ := newTestPostSvc(t, ctrl)

		gomock.InOrder(
			posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(stored, nil),
			posts.EXPECT().DeletePost(gomock.Any(), "p1", "u1").Return(nil),
			images.EXPECT().DeleteImage(gomock.Any(), "/images/image-1.png").Return(nil),
		)

		require.NoError(t, svc.DeletePost(context.Background(), owner, "p1"))
	})

	t.Run("someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, posts, _, _ := newTestPostSvc(t, ctrl)

		posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(stored, nil)

		err := svc.DeletePost(context.Background(), models.Identity{UserID: "u2"}, "p1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, posts, _, _ := newTestPostSvc(t, ctrl)

		posts.EXPECT().FindPostByID(gomock.Any(), "p9").Return(models.Post{}, store.ErrPostNotFound)

		err := svc.DeletePost(context.Background(), owner, "p9")
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}
