package api

import (
	"context"
	"fmt"
	"net/url"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/diogo/thrivemum/internal/errors"
	"github.com/diogo/thrivemum/internal/models"
)

// Generator produces a completion for a single prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Doer is the part of tls_client.HttpClient the client relies on
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls a generateContent REST endpoint with an API key
type Client struct {
	httpClient Doer
	endpoint   string
	apiKey     string
}

// Ensure Client implements Generator
var _ Generator = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the default TLS client
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// NewClient creates a REST client for endpoint. An empty endpoint falls back to
// models.DefaultEndpoint. A missing API key is not an error here: every
// Generate call then fails with ErrNoCredentials so callers take their fallback path.
func NewClient(endpoint, apiKey string, opts ...ClientOption) (*Client, error) {
	if endpoint == "" {
		endpoint = models.DefaultEndpoint
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	client := &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		// No timeout option: a single attempt that resolves or errors at the transport default.
		httpClient, err := tls_client.NewHttpClient(
			tls_client.NewNoopLogger(),
			tls_client.WithClientProfile(profiles.Chrome_120),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// requestURL appends the API key as the "key" query parameter
func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ensureCredentials guards against requests that cannot succeed
func (c *Client) ensureCredentials() error {
	if c.apiKey == "" || c.endpoint == "" {
		return apierrors.ErrNoCredentials
	}
	return nil
}
