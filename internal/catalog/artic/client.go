// Package artic is the catalog source backed by the Art Institute of Chicago
// public API.
package artic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/vitrine/internal/domain"
)

const (
	DefaultBaseURL   = "https://api.artic.edu/api/v1"
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "Vitrine/1.0"
	artworksPath     = "/artworks"
)

// ClientConfig holds the connection settings for a Client
type ClientConfig struct {
	BaseURL   string
	PageSize  int
	Timeout   time.Duration
	UserAgent string
	Metrics   *Metrics
}

// Client implements domain.PageRepository for the artworks collection
type Client struct {
	baseURL    string
	pageSize   int
	userAgent  string
	httpClient *http.Client
	cleaner    *textCleaner
	metrics    *Metrics
	logger     *slog.Logger
}

var _ domain.PageRepository = (*Client)(nil)

// NewClient creates a new catalog API client
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:   baseURL,
		pageSize:  cfg.PageSize,
		userAgent: ua,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cleaner: newTextCleaner(),
		metrics: cfg.Metrics,
		logger:  logger,
	}
}

// Fetch retrieves one page of artworks. page is 1-based.
func (c *Client) Fetch(ctx context.Context, page int) (*domain.Page, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPage, page)
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if c.pageSize > 0 {
		query.Set("limit", strconv.Itoa(c.pageSize))
	}
	query.Set("fields", requestedFields)

	started := time.Now()

	body, err := c.doRequest(ctx, artworksPath, query)
	if err != nil {
		if errors.Is(err, domain.ErrUnexpectedStatus) {
			c.metrics.observe(OutcomeStatus, started)
		} else {
			c.metrics.observe(OutcomeOffline, started)
		}
		return nil, err
	}

	resp, err := c.parseResponse(body)
	if err != nil {
		c.metrics.observe(OutcomeMalformed, started)
		return nil, err
	}

	c.metrics.observe(OutcomeOK, started)
	return c.cleaner.MapPage(page, resp), nil
}

// doRequest performs a GET request and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", domain.ErrServerOffline, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, &domain.StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	return body, nil
}

// parseResponse decodes an artworks envelope
func (c *Client) parseResponse(body []byte) (*artworksResponse, error) {
	var resp artworksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: missing data array", domain.ErrMalformedPayload)
	}
	return &resp, nil
}
