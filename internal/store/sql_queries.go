package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-post-gateway/models"
)

var (
	userColumns = []string{"user_id", "email", "username", "password", "image", "created_at"}

	postColumns = []string{"p.post_id", "p.user_id", "u.username", "p.message", "p.image", "p.created_at"}
)

func (b queryBuilder) createUser(user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.Username, user.Password, user.Image, user.CreatedAt).
		ToSql()
}

func (b queryBuilder) findUserBy(column string, value any) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
}

// updateUser builds an UPDATE touching only the non-nil fields of update.
// An update with no fields set yields a squirrel build error.
func (b queryBuilder) updateUser(userID string, update models.AccountUpdate) (string, []any, error) {
	query := b.Update(models.User{}.TableName()).Where(sq.Eq{"user_id": userID})

	if update.Username != nil {
		query = query.Set("username", *update.Username)
	}
	if update.Image != nil {
		query = query.Set("image", *update.Image)
	}

	return query.ToSql()
}

func (b queryBuilder) createPost(post models.Post) (string, []any, error) {
	return b.Insert(post.TableName()).
		Columns("post_id", "user_id", "message", "image", "created_at").
		Values(post.PostID, post.UserID, post.Message, post.Image, post.CreatedAt).
		ToSql()
}

func (b queryBuilder) selectPosts() sq.SelectBuilder {
	return b.Select(postColumns...).
		From("posts p").
		Join("users u ON u.user_id = p.user_id")
}

func (b queryBuilder) listPosts() (string, []any, error) {
	return b.selectPosts().
		OrderBy("p.created_at DESC", "p.post_id DESC").
		ToSql()
}

func (b queryBuilder) findPostByID(postID string) (string, []any, error) {
	return b.selectPosts().
		Where(sq.Eq{"p.post_id": postID}).
		ToSql()
}

func (b queryBuilder) deletePost(postID, userID string) (string, []any, error) {
	return b.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID, "user_id": userID}).
		ToSql()
}
