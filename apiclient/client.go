package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/krugerlabs/taskdash/core/authsession"
	"github.com/krugerlabs/taskdash/core/credstore"
)

// Config holds the API client configuration loaded from the environment.
type Config struct {
	// BaseURL is the backend API root, e.g. "https://api.example.com".
	BaseURL string `env:"API_BASE_URL,required"`
	// RequestTimeout bounds each individual request.
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"10s"`
}

// AuthFailureHandler is invoked whenever the backend answers 401, before the
// error is returned to the caller. It typically clears local credentials.
type AuthFailureHandler func(ctx context.Context)

// Client is the shared transport for all backend services. It injects the
// bearer token from the credential store on every request and runs the
// configured auth failure handler on 401 responses.
type Client struct {
	baseURL string
	http    *http.Client
	store   credstore.Store

	mu            sync.RWMutex
	onAuthFailure AuthFailureHandler
}

// New creates a Client. The store is consulted on every request for the
// bearer token; pass the same store the session service uses.
func New(cfg Config, store credstore.Store) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("apiclient: invalid base URL: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if store == nil {
		return nil, ErrNilStore
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		store:   store,
	}, nil
}

// ErrEmptyBaseURL is returned when the client is constructed without a base URL.
var ErrEmptyBaseURL = errors.New("apiclient: empty base URL")

// ErrNilStore is returned when the client is constructed without a credential store.
var ErrNilStore = errors.New("apiclient: nil credential store")

// OnAuthFailure sets the handler invoked on 401 responses. Only one handler
// is held; a later call replaces the earlier one.
func (c *Client) OnAuthFailure(fn AuthFailureHandler) {
	c.mu.Lock()
	c.onAuthFailure = fn
	c.mu.Unlock()
}

// do performs an API request. Path must start with "/". A non-nil in is JSON
// encoded as the request body; a non-nil out receives the decoded response
// body. Non-2xx responses and transport failures return *Error.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.store.Get(ctx, authsession.TokenKey); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.mu.RLock()
		fn := c.onAuthFailure
		c.mu.RUnlock()
		if fn != nil {
			fn(ctx)
		}
		return decodeError(resp.StatusCode, respBody)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("apiclient: decode response: %w", err)
		}
	}
	return nil
}
