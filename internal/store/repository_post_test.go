package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/models"
)

var postRowColumns = []string{"post_id", "user_id", "username", "message", "image", "created_at"}

func newTestPostRepo(t *testing.T, dialect Dialect) (*postRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, dialect)
	return &postRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectSQLite)
	post := models.Post{PostID: "p1", UserID: "u123", Message: "hello", CreatedAt: time.Now().UTC()}

	mock.ExpectExec(`INSERT INTO posts \(post_id,user_id,message,image,created_at\) VALUES \(\?,\?,\?,\?,\?\)`).
		WithArgs(post.PostID, post.UserID, post.Message, post.Image, post.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreatePost(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, post, created)
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectExec("INSERT INTO posts").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreatePost(context.Background(), models.Post{PostID: "p1", UserID: "ghost"})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestListPosts_NewestFirst(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows(postRowColumns).
		AddRow("p2", "u1", "ann", "second", "/images/image-2.png", newer).
		AddRow("p1", "u2", "bob", "first", "", older)
	mock.ExpectQuery(`SELECT p.post_id, p.user_id, u.username, p.message, p.image, p.created_at FROM posts p JOIN users u ON u.user_id = p.user_id ORDER BY p.created_at DESC, p.post_id DESC`).
		WillReturnRows(rows)

	posts, err := repo.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].PostID)
	assert.Equal(t, "ann", posts[0].Username)
	assert.Equal(t, "/images/image-2.png", posts[0].Image)
	assert.Equal(t, "bob", posts[1].Username)
}

func TestListPosts_Empty(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT (.+) FROM posts p").WillReturnRows(sqlmock.NewRows(postRowColumns))

	posts, err := repo.ListPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestListPosts_QueryError(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT (.+) FROM posts p").WillReturnError(errors.New("boom"))

	_, err := repo.ListPosts(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListPosts_ScanError(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT (.+) FROM posts p").
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow("p1"))

	_, err := repo.ListPosts(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindPostByID(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM posts p JOIN users u ON u.user_id = p.user_id WHERE p.post_id = \$1`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow("p1", "u1", "ann", "hi", "", created))
	mock.ExpectQuery(`SELECT (.+) FROM posts p`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(postRowColumns))

	post, err := repo.FindPostByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, models.Post{PostID: "p1", UserID: "u1", Username: "ann", Message: "hi", CreatedAt: created}, post)

	_, err = repo.FindPostByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantErr: ErrPostNotFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t, DialectPostgres)

			exec := mock.ExpectExec(`DELETE FROM posts WHERE \(?post_id = \$1 AND user_id = \$2\)?`).WithArgs("p1", "u1")
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeletePost(context.Background(), "p1", "u1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
