// Package client is the typed HTTP client for the REST surface. A
// shared Client carries the base URL, bearer token, circuit breaker and
// retry policy; one wrapper per resource sits on top.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/eapache/go-resiliency/retrier"
	"github.com/sony/gobreaker/v2"
)

// errRetryable tags failures worth another attempt: network errors and
// 5xx / 408 / 429 responses.
var errRetryable = errors.New("retryable")

// APIError carries a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is the shared transport for every resource wrapper.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	breaker *gobreaker.CircuitBreaker[[]byte]
	retry   *retrier.Retrier
	seq     *sequenceGuard

	mu    sync.RWMutex
	token string
}

// New builds a client for the given base URL. The timeout bounds every
// single attempt; retries add on top of it.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "bizdesk-api",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		breaker: breaker,
		retry:   retrier.New(retrier.ConstantBackoff(3, 100*time.Millisecond), retrier.WhitelistClassifier{errRetryable}),
		seq:     newSequenceGuard(),
	}
}

// SetToken stores the bearer token attached to subsequent requests. It
// may be called while other goroutines are issuing requests, e.g. on a
// re-login after expiry.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// get runs an idempotent fetch with retry; mutations go through do
// directly and are attempted once.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.retry.RunCtx(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, path, nil, out)
	})
}

// do executes one attempt through the circuit breaker.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	data, err := c.breaker.Execute(func() ([]byte, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errRetryable, err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: read response: %v", errRetryable, err)
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return raw, nil
		}

		apiErr := &APIError{Status: resp.StatusCode, Message: decodeErrorMessage(raw)}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusRequestTimeout ||
			resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %w", errRetryable, apiErr)
		}
		return nil, apiErr
	})
	if err != nil {
		return err
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeErrorMessage(raw []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(raw))
}
