package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/nft-holders/internal/logger"
)

const (
	DEFAULT_MAX_RETRIES  = 3
	DEFAULT_RETRY_DELAY  = 1 * time.Second
	DEFAULT_HTTP_TIMEOUT = 30 * time.Second
)

// StatusError is returned when the server answers with a non-success status code
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// RetryPolicy configures how failed requests are retried
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt
	MaxRetries uint64
	// Delay is the fixed wait between two attempts
	Delay time.Duration
}

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Get performs a GET request and unmarshals the JSON response into result
	Get(ctx context.Context, url string, result interface{}) error
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
	policy RetryPolicy
	// timer is nil outside tests; backoff then uses a real timer
	timer backoff.Timer
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration, policy RetryPolicy) HTTPClient {
	return newHTTPClient(&http.Client{Timeout: timeout}, policy, nil)
}

func newHTTPClient(client *http.Client, policy RetryPolicy, timer backoff.Timer) *RealHTTPClient {
	return &RealHTTPClient{
		client: client,
		policy: policy,
		timer:  timer,
	}
}

// do executes a single attempt. Any failure is retryable.
func (c *RealHTTPClient) do(req *http.Request, result interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(req.Context(), "failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Get performs a GET request and unmarshals the response into result.
// Failed attempts are retried with a constant delay until the retry budget is spent.
func (c *RealHTTPClient) Get(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	operation := func() error {
		return c.do(req, result)
	}

	attemptsLeft := c.policy.MaxRetries
	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Request failed, retrying",
			zap.String("url", url),
			zap.Uint64("attempts_left", attemptsLeft),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		attemptsLeft--
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.policy.Delay), c.policy.MaxRetries),
		ctx,
	)

	if err := backoff.RetryNotifyWithTimer(operation, b, notify, c.timer); err != nil {
		return fmt.Errorf("request failed after retries: %w", err)
	}

	return nil
}
