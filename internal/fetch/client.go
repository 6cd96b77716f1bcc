package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"yts/internal/config"
	"yts/internal/logging"
)

// Client retrieves watch pages and timed-text documents.
type Client struct {
	http       *http.Client
	userAgent  string
	watchURL   string
	maxBody    int64
	newBackOff func() backoff.BackOff
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithBackOff overrides the retry policy factory.
func WithBackOff(factory func() backoff.BackOff) Option {
	return func(c *Client) {
		if factory != nil {
			c.newBackOff = factory
		}
	}
}

// New creates a Client from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Client {
	fetchCfg := cfg.Fetch
	maxElapsed := fetchCfg.RetryMaxElapsed()
	client := &Client{
		http:      &http.Client{Timeout: fetchCfg.Timeout()},
		userAgent: fetchCfg.UserAgent,
		watchURL:  fetchCfg.WatchURL,
		maxBody:   fetchCfg.MaxBodyBytes(),
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.MaxElapsedTime = maxElapsed
			return bo
		},
		logger: logging.NewComponentLogger(logger, "fetch"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// WatchPage retrieves the watch page document for a video ID.
func (c *Client) WatchPage(ctx context.Context, videoID string) (string, error) {
	return c.get(ctx, c.watchURL+videoID)
}

// TimedText retrieves a caption document from a track fetch URL.
func (c *Client) TimedText(ctx context.Context, fetchURL string) (string, error) {
	return c.get(ctx, fetchURL)
}

// get fetches a URL, retrying transient failures (network errors, 5xx,
// and 429) until the configured retry budget runs out. Other statuses
// fail immediately.
func (c *Client) get(ctx context.Context, url string) (string, error) {
	logger := c.logger.With(logging.String(logging.FieldRequestID, uuid.NewString()))

	var body string
	attempts := 0
	operation := func() error {
		attempts++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("upstream status %s", resp.Status)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status %s", resp.Status))
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		body = string(data)
		return nil
	}

	start := time.Now()
	if err := backoff.Retry(operation, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		logger.Debug("request failed",
			logging.String(logging.FieldURL, url),
			logging.Int("attempts", attempts),
			logging.Error(err))
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	logger.Debug("request complete",
		logging.String(logging.FieldURL, url),
		logging.Int("attempts", attempts),
		logging.Duration("elapsed", time.Since(start)))
	return body, nil
}
