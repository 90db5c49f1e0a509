package oai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the default base URL for the OpenAI API.
const DefaultBaseURL = "https://api.openai.com/v1"

// APIKeyEnvVar is the environment variable read by NewClientFromEnv and by
// builders that are not bound to an explicit client.
const APIKeyEnvVar = "OPENAI_API_KEY"

// Client is a client for the OpenAI API.
//
// https://platform.openai.com/docs/api-reference
type Client struct {
	// APIKey is the API key to use for requests.
	APIKey string

	// HTTPClient is the HTTP client to use for requests.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// BaseURL is the base URL for the OpenAI API. If empty,
	// DefaultBaseURL is used.
	BaseURL string

	// Organization is the organization to use for requests.
	//
	// https://platform.openai.com/docs/api-reference/authentication
	Organization string

	// Limits, when non-nil, makes the client wait on the matching
	// endpoint family's request limiter before each call.
	Limits *RateLimiters
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithHTTPClient is a ClientOption that sets the HTTP client to use for
// requests.
//
// If the client is nil, then http.DefaultClient is used.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		if c == nil {
			c = http.DefaultClient
		}
		client.HTTPClient = c
	}
}

// WithBaseURL is a ClientOption that sets the base URL to use for requests,
// which is mainly useful to point the client at a test server.
func WithBaseURL(u string) ClientOption {
	return func(client *Client) {
		client.BaseURL = u
	}
}

// WithOrganization is a ClientOption that sets the organization to use for
// requests.
func WithOrganization(org string) ClientOption {
	return func(client *Client) {
		client.Organization = org
	}
}

// WithRateLimiters is a ClientOption that makes the client wait on the given
// limiters before each request, e.g. the package-level RateLimits.
func WithRateLimiters(rl *RateLimiters) ClientOption {
	return func(client *Client) {
		client.Limits = rl
	}
}

// NewClient returns a new Client with the given API key.
//
// # Example
//
//	c := oai.NewClient(os.Getenv(oai.APIKeyEnvVar))
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var loadDotEnv sync.Once

// NewClientFromEnv returns a new Client using the OPENAI_API_KEY environment
// variable, loading a .env file once if one is present in the working
// directory. The variable is read on every call rather than cached, so tests
// can swap credentials without a process restart. A missing key is a
// ConfigError, not a fatal condition.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	apiKey := os.Getenv(APIKeyEnvVar)
	if apiKey == "" {
		return nil, &ConfigError{Reason: APIKeyEnvVar + " is not set"}
	}

	return NewClient(apiKey, opts...), nil
}

// post issues a JSON POST request against the API and decodes the response
// into out.
func (c *Client) post(ctx context.Context, path string, body any, out any, family limitFamily) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("oai: marshal request body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, bytes.NewReader(b), out, family)
}

// get issues a GET request against the API and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, limitNone)
}

// do is the single request path for all endpoints. Every failure is sorted
// into one of the package's error types so callers can tell a local
// configuration problem from a transport failure, a service error response,
// or a malformed response body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any, family limitFamily) error {
	if c.APIKey == "" {
		return &ConfigError{Reason: "API key is not set"}
	}

	if lim := c.Limits.requests(family); lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return &TransportError{Err: err}
		}
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	r, err := http.NewRequestWithContext(ctx, method, baseURL+path, body)
	if err != nil {
		return &ConfigError{Reason: "build request: " + err.Error()}
	}

	r.Header.Set("Authorization", "Bearer "+c.APIKey)
	r.Header.Set("Content-Type", "application/json")

	if c.Organization != "" {
		r.Header.Set("OpenAI-Organization", c.Organization)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(r)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiErrorFromResponse(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}

// builderCore holds the state shared by all request builders: the bound
// client (if any), the first deferred validation error, and the single-use
// guard.
type builderCore struct {
	client   *Client
	err      error
	consumed bool
}

// setErr records a deferred validation error. The first error wins, so the
// terminal call reports the earliest misconfiguration.
func (b *builderCore) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// consume marks the builder as used and returns any deferred validation
// error. Terminal calls run it before touching the network, so invalid
// parameters and reused builders never produce a request.
func (b *builderCore) consume(endpoint string) error {
	if b.consumed {
		return &ConfigError{Reason: endpoint + " builder already consumed"}
	}
	b.consumed = true

	return b.err
}

// resolveClient returns the bound client, or one constructed from the
// environment at the point of use.
func (b *builderCore) resolveClient() (*Client, error) {
	if b.client != nil {
		return b.client, nil
	}
	return NewClientFromEnv()
}
