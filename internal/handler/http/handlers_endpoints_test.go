package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-post-gateway/internal/service"
	"github.com/MKhiriev/go-post-gateway/internal/store"
	"github.com/MKhiriev/go-post-gateway/models"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withURLParam sets a chi route parameter on a request served without the
// router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ── POST /tokens ─────────────────────────────────────────────────────────────

func TestCreateToken(t *testing.T) {
	user := models.User{UserID: "u1", Email: "ann@example.com"}

	tests := []struct {
		name       string
		body       string
		prepare    func(m testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"email":"ann@example.com","password":"p"}`,
			prepare: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), models.Credentials{Email: "ann@example.com", Password: "p"}).Return(user, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{Token: &jwt.Token{}, SignedString: "signed.jwt.value"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"token":"signed.jwt.value","message":"OK"}`,
		},
		{
			name: "wrong credentials",
			body: `{"email":"ann@example.com","password":"nope"}`,
			prepare: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"auth error"}`,
		},
		{
			name: "missing fields",
			body: `{}`,
			prepare: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid data provided"}`,
		},
		{
			name:       "broken body",
			body:       `{"email"`,
			prepare:    func(m testServices) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid request body"}`,
		},
		{
			name: "signing failure",
			body: `{"email":"ann@example.com","password":"p"}`,
			prepare: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.prepare(m)

			rec := serve(http.HandlerFunc(h.createToken), jsonRequest(http.MethodPost, "/tokens", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ── /users ───────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("json", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().
			Register(gomock.Any(), models.Registration{Email: "a@b.c", Password: "p", Username: "ann"}, (*models.Upload)(nil)).
			Return(models.User{UserID: "u1", Email: "a@b.c", Username: "ann", Password: "hash", CreatedAt: created}, nil)

		rec := serve(http.HandlerFunc(h.register), jsonRequest(http.MethodPost, "/users", `{"email":"a@b.c","password":"p","username":"ann"}`))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"OK","user":{"user_id":"u1","email":"a@b.c","username":"ann","created_at":"2026-03-01T12:00:00Z"}}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("multipart with avatar", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ any, registration models.Registration, avatar *models.Upload) (models.User, error) {
				assert.Equal(t, "ann", registration.Username)
				assert.Equal(t, imageField, avatar.FieldName)
				return models.User{UserID: "u1", Username: "ann", Image: "/images/image-1.png"}, nil
			},
		)

		req := newMultipartRequest(t, http.MethodPost, "/users", map[string]string{
			"email": "a@b.c", "password": "p", "username": "ann",
		}, pngBytes)
		rec := serve(http.HandlerFunc(h.register), req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"image":"/images/image-1.png"`)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.User{}, errors.Join(errors.New("user creation ended with error"), store.ErrEmailAlreadyExists))

		rec := serve(http.HandlerFunc(h.register), jsonRequest(http.MethodPost, "/users", `{"email":"a@b.c","password":"p","username":"ann"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("not an image", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNotAnImage)

		req := newMultipartRequest(t, http.MethodPost, "/users", map[string]string{"email": "a@b.c"}, []byte("plain text"))
		rec := serve(http.HandlerFunc(h.register), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUser(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().GetUser(gomock.Any(), "u1").
		Return(models.User{UserID: "u1", Email: "secret@b.c", Username: "ann", Password: "hash"}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	rec := serve(http.HandlerFunc(h.getUser), withURLParam(httptest.NewRequest(http.MethodGet, "/users/u1", nil), "userID", "u1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret@b.c")
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.Contains(t, rec.Body.String(), `"username":"ann"`)

	rec = serve(http.HandlerFunc(h.getUser), withURLParam(httptest.NewRequest(http.MethodGet, "/users/ghost", nil), "userID", "ghost"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ── /posts ───────────────────────────────────────────────────────────────────

func TestListPosts(t *testing.T) {
	h, m := newTestHandler(t)
	m.posts.EXPECT().ListPosts(gomock.Any()).Return([]models.Post{}, nil)

	rec := serve(http.HandlerFunc(h.listPosts), withIdentityOf(httptest.NewRequest(http.MethodGet, "/posts", nil), "u1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"posts":[]}`, rec.Body.String())
}

func TestListPosts_ServerErrorIsGeneric(t *testing.T) {
	h, m := newTestHandler(t)
	m.posts.EXPECT().ListPosts(gomock.Any()).Return(nil, errors.New("pq: relation posts does not exist"))

	rec := serve(http.HandlerFunc(h.listPosts), withIdentityOf(httptest.NewRequest(http.MethodGet, "/posts", nil), "u1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"server error"}`, rec.Body.String())
}

func TestCreatePost(t *testing.T) {
	h, m := newTestHandler(t)
	m.posts.EXPECT().
		CreatePost(gomock.Any(), models.Identity{UserID: "u1"}, models.NewPost{Message: "hello"}, (*models.Upload)(nil)).
		Return(models.Post{PostID: "p1", UserID: "u1", Message: "hello"}, nil)

	req := withIdentityOf(jsonRequest(http.MethodPost, "/posts", `{"message":"hello"}`), "u1")
	rec := serve(http.HandlerFunc(h.createPost), req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"OK"`)
	assert.Contains(t, rec.Body.String(), `"post_id":"p1"`)
}

func TestCreatePost_WithoutIdentity(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(http.HandlerFunc(h.createPost), jsonRequest(http.MethodPost, "/posts", `{"message":"hello"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetPost(t *testing.T) {
	h, m := newTestHandler(t)
	m.posts.EXPECT().GetPost(gomock.Any(), "p1").Return(models.Post{PostID: "p1"}, nil)
	m.posts.EXPECT().GetPost(gomock.Any(), "p9").Return(models.Post{}, store.ErrPostNotFound)

	rec := serve(http.HandlerFunc(h.getPost), withURLParam(httptest.NewRequest(http.MethodGet, "/posts/p1", nil), "postID", "p1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(http.HandlerFunc(h.getPost), withURLParam(httptest.NewRequest(http.MethodGet, "/posts/p9", nil), "postID", "p9"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"post not found"}`, rec.Body.String())
}

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "owner", wantStatus: http.StatusNoContent},
		{name: "someone else", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing", err: store.ErrPostNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.posts.EXPECT().DeletePost(gomock.Any(), models.Identity{UserID: "u1"}, "p1").Return(tt.err)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/posts/p1", nil), "postID", "p1")
			rec := serve(http.HandlerFunc(h.deletePost), withIdentityOf(req, "u1"))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ── /account ─────────────────────────────────────────────────────────────────

func TestUpdateAccount(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().UpdateAccount(gomock.Any(), models.Identity{UserID: "u1"}, gomock.Any(), (*models.Upload)(nil)).DoAndReturn(
		func(_ any, _ models.Identity, update models.AccountUpdate, _ *models.Upload) (models.User, error) {
			require.NotNil(t, update.Username)
			assert.Equal(t, "annie", *update.Username)
			return models.User{UserID: "u1", Username: "annie"}, nil
		},
	)

	req := withIdentityOf(jsonRequest(http.MethodPatch, "/account", `{"username":"annie"}`), "u1")
	rec := serve(http.HandlerFunc(h.updateAccount), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"annie"`)
}

func TestGetAccount_UserGone(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().GetUser(gomock.Any(), "u1").Return(models.User{}, store.ErrNoUserWasFound)

	rec := serve(http.HandlerFunc(h.getAccount), withIdentityOf(httptest.NewRequest(http.MethodGet, "/account", nil), "u1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrExpiredCredential, http.StatusUnauthorized},
		{service.ErrWrongCredentials, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{store.ErrEmailAlreadyExists, http.StatusConflict},
		{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errNoIdentity, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		got, message := statusFromError(tt.err)
		assert.Equal(t, tt.want, got, tt.err.Error())
		if got >= http.StatusInternalServerError {
			assert.Equal(t, serverErrorMessage, message)
		}
	}
}
