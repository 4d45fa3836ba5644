package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment selects which Plaid deployment the client talks to.
type Environment string

const (
	// Sandbox is the test environment with simulated institutions and data.
	Sandbox Environment = "sandbox"
	// Development is the environment for testing with live credentials.
	Development Environment = "development"
	// Production is the live environment.
	Production Environment = "production"
)

// BaseURL returns the API host for the environment.
func (e Environment) BaseURL() string {
	switch e {
	case Sandbox:
		return "https://sandbox.plaid.com"
	case Development:
		return "https://development.plaid.com"
	case Production:
		return "https://production.plaid.com"
	}
	return ""
}

// ParseEnvironment parses an environment name such as "sandbox" or
// "PRODUCTION". Unrecognized names are an error; callers must never fall
// back to Production silently.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sandbox":
		return Sandbox, nil
	case "development":
		return Development, nil
	case "production":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q (must be sandbox, development or production)", ErrInvalidEnvironment, s)
}

// Client is a typed client for the Plaid API. It holds the credentials and
// environment chosen at construction and injects them into every request;
// it is immutable after NewClient returns and safe for concurrent use.
type Client struct {
	clientID   string
	secret     string
	env        Environment
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	userAgent  string
	logger     zerolog.Logger
}

// WithHTTPClient sets a custom HTTP client, replacing the default. The
// caller keeps ownership of transport concerns such as TLS, proxies,
// connection pooling and retries.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithBaseURL overrides the environment-derived base URL. Intended for
// tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger used for per-request debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

const defaultTimeout = 30 * time.Second

const defaultUserAgent = "plaid-go"

// NewClient creates a Plaid client from explicit credentials.
func NewClient(clientID, secret string, env Environment, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if env.BaseURL() == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnvironment, string(env))
	}

	options := clientOptions{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	client := &Client{
		clientID:   clientID,
		secret:     secret,
		env:        env,
		baseURL:    env.BaseURL(),
		userAgent:  options.userAgent,
		httpClient: options.httpClient,
		logger:     options.logger,
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: options.timeout}
	}
	if options.baseURL != "" {
		client.baseURL = options.baseURL
	}

	return client, nil
}

// Environment variables read by NewClientFromEnv.
const (
	EnvClientID    = "PLAID_CLIENT_ID"
	EnvSecret      = "PLAID_SECRET"
	EnvEnvironment = "PLAID_ENVIRONMENT"
)

// NewClientFromEnv creates a Plaid client from the PLAID_CLIENT_ID,
// PLAID_SECRET and PLAID_ENVIRONMENT environment variables. A missing or
// unrecognized environment is a construction error.
func NewClientFromEnv(opts ...Option) (*Client, error) {
	env, err := ParseEnvironment(os.Getenv(EnvEnvironment))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvEnvironment, err)
	}
	clientID := os.Getenv(EnvClientID)
	if clientID == "" {
		return nil, fmt.Errorf("%s: %w", EnvClientID, ErrMissingClientID)
	}
	secret := os.Getenv(EnvSecret)
	if secret == "" {
		return nil, fmt.Errorf("%s: %w", EnvSecret, ErrMissingSecret)
	}
	return NewClient(clientID, secret, env, opts...)
}

// Environment returns the environment the client was constructed with.
func (c *Client) Environment() Environment {
	return c.env
}

// sendRequest executes one Plaid API call: it serializes the request body,
// POSTs it to the endpoint path, and classifies the response into the typed
// success payload or one of the error kinds. Credentials are already part
// of the body struct; see the per-endpoint request types.
func sendRequest[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("body_bytes", len(raw)).
		Msg("Plaid API response")

	return decodeResponse[T](resp.StatusCode, raw)
}
