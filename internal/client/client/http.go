package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/common"
	"github.com/dmitrijs2005/gophadmin/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient implements Client against the admin REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// HTTPClientOption configures the HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(hc *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

func WithLogger(l logging.Logger) HTTPClientOption {
	return func(c *HTTPClient) {
		c.logger = l
	}
}

// NewHTTPClient creates a client for the API rooted at baseURL,
// e.g. "http://127.0.0.1:8000/admin".
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type statusRequest struct {
	Status models.UserStatus `json:"status"`
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, OpLogin, http.MethodPost, "/login", "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Signup(ctx context.Context, data models.SignupData) error {
	return c.do(ctx, OpSignup, http.MethodPost, "/signup", "", data, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, OpListUsers, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (c *HTTPClient) UpdateUserStatus(ctx context.Context, token, userID string, status models.UserStatus) error {
	path := "/users/" + url.PathEscape(userID) + "/status"
	return c.do(ctx, OpUpdateUserStatus, http.MethodPut, path, token, statusRequest{Status: status}, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, OpDeleteUser, http.MethodDelete, "/users/"+url.PathEscape(userID), token, nil, nil)
}

// Close releases idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// do performs one request. A non-empty token is sent as a bearer credential;
// out, when non-nil, receives the decoded 2xx body.
func (c *HTTPClient) do(ctx context.Context, op Op, method, path, token string, body, out any) error {
	requestID := uuid.NewString()
	log := c.logger.With("op", string(op), "request_id", requestID)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			log.Error(ctx, "marshal request", "error", err)
			return failed(op)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		log.Error(ctx, "build request", "error", err)
		return failed(op)
	}
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return failed(op)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	log.Debug(ctx, "response", "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn(ctx, "unexpected status", "method", method, "path", path, "status", resp.StatusCode)
		return failed(op)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn(ctx, "decode response", "error", fmt.Errorf("%s %s: %w", method, path, err))
		return failed(op)
	}
	return nil
}
