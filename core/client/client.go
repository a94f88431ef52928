package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/pkg/logger"
)

// maxResponseBody caps how much of a response is read into memory.
const maxResponseBody = 4 << 20

// Config holds client connection settings.
type Config struct {
	BaseURL string        `env:"STOREFRONT_API_URL" envDefault:"http://localhost:5000/api/v1"`
	Timeout time.Duration `env:"STOREFRONT_API_TIMEOUT" envDefault:"10s"`
}

// Client is the storefront API client. Construct with New; the zero value is
// not usable.
type Client struct {
	baseURL *url.URL
	httpc   *http.Client
	log     *slog.Logger

	Auth       *AuthService
	Products   *ProductsService
	Categories *CategoriesService
	Cart       *CartService
	Orders     *OrdersService
	Users      *UsersService
	Wishlist   *WishlistService
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithTransport sets the RoundTripper on the client's HTTP client. Used to
// install an AuthTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.httpc.Transport = rt
		}
	}
}

// New creates a Client for the API at cfg.BaseURL.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: base,
		httpc:   &http.Client{Timeout: timeout},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{client: c}
	c.Products = &ProductsService{client: c}
	c.Categories = &CategoriesService{client: c}
	c.Cart = &CartService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Users = &UsersService{client: c}
	c.Wishlist = &WishlistService{client: c}

	return c, nil
}

// envelope is the API's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues a JSON request and decodes the envelope's data field into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.doWithBearer(ctx, method, path, query, "", body, out)
}

// doWithBearer is do with an explicit Authorization bearer credential,
// overriding whatever the transport would attach. Needed for token refresh,
// which authenticates with the refresh token instead of the access token.
func (c *Client) doWithBearer(ctx context.Context, method, path string, query url.Values, bearer string, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return errors.Join(ErrDecodeFailed, err)
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body (proxy error page) is tolerated; the status code
		// decides the outcome below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 || (len(raw) > 0 && !env.Success) {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		c.log.DebugContext(ctx, "api request rejected",
			logger.Component("client"),
			logger.RequestID(requestID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Join(ErrDecodeFailed, err)
		}
	}
	return nil
}
