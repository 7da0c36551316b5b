// Package serpapi is the single upstream client: it turns a flat query map
// into one HTTP GET against the SerpAPI search endpoint and classifies
// every way that can go wrong.
package serpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/dharmasatrya/travelsearch/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultBaseURL is the fixed SerpAPI search endpoint.
const DefaultBaseURL = "https://serpapi.com/search"

// DefaultTimeout bounds the entire call, connect through body read.
const DefaultTimeout = 30 * time.Second

// ErrMissingAPIKey signals a configuration failure, not a transient one:
// no network call is attempted without a key.
var ErrMissingAPIKey = errors.New("SERPAPI_API_KEY is not set; add it to your .env file or environment")

// StatusError is a non-2xx upstream response. Message carries the
// upstream-provided error text when its body was parseable JSON.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return "SerpAPI error: " + e.Message
	}
	return fmt.Sprintf("HTTP error occurred: status %d", e.StatusCode)
}

// Config holds the client settings. The API key is injected here once at
// construction; the client never reads the environment itself.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client issues SerpAPI search requests. Safe for concurrent use: it holds
// no per-call state and the underlying http.Client is reusable.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Search performs exactly one GET with params as the query string, the API
// key injected immediately before dispatch. It returns the decoded JSON
// document on success, or a classified error: ErrMissingAPIKey before any
// network I/O, *StatusError for non-2xx responses, a wrapped error for
// transport or decode failures. No retries: the upstream charges per call
// and retry policy belongs to the caller.
func (c *Client) Search(ctx context.Context, params Query) (models.Document, error) {
	if c.apiKey == "" {
		c.logger.Error("serpapi request rejected: no API key configured")
		return nil, ErrMissingAPIKey
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Info("serpapi request", zap.String("engine", params["engine"]))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("serpapi request failed", zap.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		body, readErr := io.ReadAll(resp.Body)
		if readErr == nil {
			var doc models.Document
			if json.Unmarshal(body, &doc) == nil {
				if msg, ok := doc["error"].(string); ok {
					statusErr.Message = msg
				}
			}
		}
		c.logger.Error("serpapi returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("upstream_error", statusErr.Message))
		return nil, statusErr
	}

	var doc models.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		c.logger.Error("serpapi response not parseable", zap.Error(err))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Info("serpapi request successful", zap.String("engine", params["engine"]))
	return doc, nil
}
