package shopify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/tejaswadiwala/torcc/internal/xhttp"
	"golang.org/x/oauth2"
)

// Client talks to the Shopify Admin GraphQL API for a single shop.
type Client struct {
	Metaobjects MetaobjectService

	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(shopName, apiVersion string, tokenSource oauth2.TokenSource, opts ...Option) *Client {
	cfg := &clientConfig{
		endpoint:    fmt.Sprintf("https://%s.myshopify.com/admin/api/%s/graphql.json", shopName, apiVersion),
		tokenSource: tokenSource,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &shopifyTransport{
		base:        xhttp.NewTransport(),
		tokenSource: cfg.tokenSource,
	}

	c := &Client{
		endpoint:   cfg.endpoint,
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		logger:     cfg.logger,
	}

	c.Metaobjects = &metaobjectService{client: c}

	return c
}

type clientConfig struct {
	endpoint    string
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
	timeout     time.Duration
}

type Option func(*clientConfig)

// WithEndpoint overrides the Admin API URL. Used by tests.
func WithEndpoint(endpoint string) Option {
	return func(cfg *clientConfig) { cfg.endpoint = endpoint }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   go_json.RawMessage `json:"data"`
	Errors []responseError    `json:"errors"`
}

type responseError struct {
	Message string `json:"message"`
}

// do executes a GraphQL document against the Admin API and decodes the
// response data into result. Non-2xx statuses become *APIError; a
// top-level errors array becomes *GraphQLError.
func (c *Client) do(ctx context.Context, query string, variables map[string]any, result any) error {
	payload, err := go_json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(xhttp.ContentType, "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var envelope graphQLResponse
	if err := go_json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return &GraphQLError{Messages: messages}
	}

	if result != nil {
		if err := go_json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("decoding response data: %w\nbody: %s", err, string(body))
		}
	}

	return nil
}

type shopifyTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*shopifyTransport)(nil)

func (t *shopifyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	req.Header.Set(xhttp.XShopifyAccessToken, token.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
