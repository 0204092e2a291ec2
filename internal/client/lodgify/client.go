// Package lodgify is a minimal client for the Lodgify v1/v2 APIs,
// covering webhook subscriptions and booking reads.
package lodgify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/Elzoidbergo/HostPilot/internal/xhttp"
)

const headerAPIKey = "X-ApiKey"

const defaultTimeout = 30 * time.Second

type Client struct {
	Booking BookingService
	Webhook WebhookService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(apiKey string, opts ...Option) *Client {
	const baseURL = "https://api.lodgify.com"

	cfg := &clientConfig{
		baseURL: baseURL,
		logger:  slog.Default(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &lodgifyTransport{
		base:   xhttp.NewTransport(),
		apiKey: apiKey,
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.baseURL, "/"),
		httpClient: xhttp.NewHTTPClient(xhttp.WithTransport(transport), xhttp.WithTimeout(cfg.timeout)),
		logger:     cfg.logger,
	}

	c.Booking = &bookingService{client: c}
	c.Webhook = &webhookService{client: c}

	return c
}

type clientConfig struct {
	baseURL string
	logger  *slog.Logger
	timeout time.Duration
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := go_json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set(xhttp.ContentType, "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(respBody)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(respBody))
		}
	}

	return nil
}

type lodgifyTransport struct {
	base   http.RoundTripper
	apiKey string
}

var _ http.RoundTripper = (*lodgifyTransport)(nil)

func (t *lodgifyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(headerAPIKey, t.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
