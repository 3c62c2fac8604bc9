package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/utils"
	"github.com/MKhiriev/go-post-gateway/models"
)

type httpGatewayAdapter struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPGatewayAdapter returns a [GatewayAdapter] for the gateway at address.
// A bare "host:port" is treated as http. Returns an error if address is
// empty or is not a valid URL.
func NewHTTPGatewayAdapter(address string, timeout time.Duration, logger *logger.Logger) (GatewayAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL).SetTimeout(timeout)

	return &httpGatewayAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpGatewayAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpGatewayAdapter) Token() string {
	return h.token
}

func (h *httpGatewayAdapter) Register(ctx context.Context, registration models.Registration) (models.User, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(registration).
		SetResult(&result).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

func (h *httpGatewayAdapter) CreateToken(ctx context.Context, credentials models.Credentials) (string, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post("/tokens")
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Msg("token received")
	return h.token, nil
}

func (h *httpGatewayAdapter) Account(ctx context.Context) (models.User, error) {
	var result models.UserResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.SetResult(&result).Get("/account")
	if err != nil {
		return models.User{}, fmt.Errorf("account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

func (h *httpGatewayAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var result models.PostsResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&result).Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Posts, nil
}

func (h *httpGatewayAdapter) CreatePost(ctx context.Context, post models.NewPost) (models.Post, error) {
	var result models.PostResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	resp, err := req.SetBody(post).SetResult(&result).Post("/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return result.Post, nil
}

func (h *httpGatewayAdapter) DeletePost(ctx context.Context, postID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("postID", postID).Delete("/posts/{postID}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGatewayAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token), nil
}
