package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/wonny/pairlens/backend/pkg/config"
	"github.com/wonny/pairlens/backend/pkg/logger"
	"github.com/wonny/pairlens/backend/pkg/redis"
)

// Client is an HTTP client wrapper with throttling, retry logic and logging
// ⭐ SSOT: 모든 외부 HTTP 요청은 이 클라이언트를 통해서만 수행
type Client struct {
	httpClient  *http.Client
	logger      *logger.Logger
	retryConfig RetryConfig
	userAgent   string

	// Process-wide spacing between outbound requests
	throttle *rate.Limiter

	// Optional cross-process quota (Redis)
	rateLimiter  *redis.RateLimiter
	rateLimitCfg *redis.RateLimitConfig
}

// RetryConfig holds retry configuration.
// Backoff is linear: Delay * (attempt+1).
type RetryConfig struct {
	MaxRetries int // total attempts
	Delay      time.Duration
	Enabled    bool
}

// StatusError is returned for any non-2xx upstream response
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

// IsRateLimited reports whether err is an upstream 429
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests
}

// New creates a new HTTP client from config
// ⭐ SSOT: http.Client 인스턴스는 여기서만 생성
func New(cfg *config.Config, log *logger.Logger) *Client {
	up := cfg.Upstream

	limit := rate.Inf
	if interval := up.MinInterval(); interval > 0 {
		limit = rate.Every(interval)
	}

	maxRetries := up.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: up.RequestTimeout, // fixed per-attempt timeout
		},
		logger: log.Module("httputil"),
		retryConfig: RetryConfig{
			MaxRetries: maxRetries,
			Delay:      up.RetryDelay,
			Enabled:    true,
		},
		userAgent: up.UserAgent,
		throttle:  rate.NewLimiter(limit, 1),
	}
}

// WithRetry configures retry behavior
func (c *Client) WithRetry(maxRetries int, delay time.Duration) *Client {
	c.retryConfig.MaxRetries = maxRetries
	c.retryConfig.Delay = delay
	c.retryConfig.Enabled = true
	return c
}

// DisableRetry disables automatic retry
func (c *Client) DisableRetry() *Client {
	c.retryConfig.Enabled = false
	return c
}

// WithRateLimiter adds a shared Redis quota on top of the local throttle
func (c *Client) WithRateLimiter(limiter *redis.RateLimiter, cfg redis.RateLimitConfig) *Client {
	c.rateLimiter = limiter
	c.rateLimitCfg = &cfg
	return c
}

// Get performs a single throttled GET attempt
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return c.do(req)
}

// GetJSON performs a single GET attempt and decodes a 2xx JSON body into dest
func (c *Client) GetJSON(ctx context.Context, url string, dest interface{}) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Retry runs fn up to MaxRetries times with linear backoff.
// Every error is retried (429, other statuses, network, decode) except
// context cancellation of the caller.
func (c *Client) Retry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	attempts := 1
	if c.retryConfig.Enabled {
		attempts = c.retryConfig.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		// Last attempt - return error
		if attempt == attempts-1 {
			break
		}

		delay := c.retryConfig.Delay * time.Duration(attempt+1)
		fields := map[string]interface{}{
			"op":      op,
			"attempt": attempt + 1,
			"delay":   delay,
		}
		if IsRateLimited(lastErr) {
			c.logger.WithFields(fields).Warn("Upstream rate limited, backing off")
		} else {
			c.logger.WithError(lastErr).WithFields(fields).Warn("Retrying request")
		}

		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", op, attempts, lastErr)
}

// do waits for the throttle and executes one request with logging
func (c *Client) do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if err := c.throttle.Wait(ctx); err != nil {
		return nil, fmt.Errorf("throttle wait failed: %w", err)
	}

	if c.rateLimiter != nil && c.rateLimitCfg != nil {
		if err := c.rateLimiter.Wait(ctx, *c.rateLimitCfg); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.String(),
			"duration": duration,
			"error":    err.Error(),
		}).Debug("HTTP request failed")
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"method":      req.Method,
		"url":         req.URL.String(),
		"status_code": resp.StatusCode,
		"duration":    duration,
	}).Debug("HTTP request completed")

	return resp, nil
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
