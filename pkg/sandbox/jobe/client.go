package jobe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"runbox-api/pkg/sandbox"
)

const (
	runsPath      = "/restapi/runs"
	languagesPath = "/restapi/languages"

	defaultHTTPTimeout  = 30 * time.Second
	defaultRetryBackoff = 200 * time.Millisecond
	maxRetryAttempts    = 3

	defaultLanguageTTL = 10 * time.Minute
)

// Client talks to a Jobe run server. Run submissions are sent exactly once;
// the read-only language directory is retried with backoff and cached with a
// TTL so repeated lookups do not hit the server.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *log.Logger
	clock      func() time.Time

	langMu      sync.RWMutex
	languages   []string
	langTTL     time.Duration
	langLastRef time.Time
}

// ClientOption customises the Jobe client.
type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger attaches a custom logger (defaults to log.Default()).
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAPIKey sets the X-API-KEY header sent with every request.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = strings.TrimSpace(key)
	}
}

// WithClock overrides the time source (primarily for testing).
func WithClock(clock func() time.Time) ClientOption {
	return func(c *Client) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLanguageCacheTTL sets a time-to-live for the language directory cache.
// When positive, the client refreshes the directory after TTL elapses.
func WithLanguageCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		if ttl > 0 {
			c.langTTL = ttl
		}
	}
}

// NewClient constructs a Jobe client for the given server base URL.
func NewClient(name, baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("jobe: base URL is required")
	}
	if name == "" {
		name = "jobe"
	}

	client := &Client{
		name:    name,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:  log.Default(),
		clock:   time.Now,
		langTTL: defaultLanguageTTL,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if client.logger == nil {
		client.logger = log.Default()
	}
	if client.clock == nil {
		client.clock = time.Now
	}
	return client, nil
}

// Name implements sandbox.Provider.
func (c *Client) Name() string { return c.name }

// Submit implements sandbox.Provider. Protocol-level rejections are mapped
// onto sandbox error codes so that the caller classifies every outcome the
// same way; only local failures surface as Go errors.
func (c *Client) Submit(ctx context.Context, req *sandbox.RunRequest) (*sandbox.ExecutionResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("jobe: run request is required")
	}
	body := runRequestBody{RunSpec: runSpec{
		LanguageID: req.Language,
		SourceCode: req.SourceCode,
		Input:      req.Input,
		Parameters: req.Params,
	}}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("jobe: encode run request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+runsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("jobe: build run request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("jobe: read run response: %w", readErr)
	}

	if code, ok := statusToSandboxError(resp.StatusCode); ok {
		c.logf("jobe: run rejected with http %d: %s", resp.StatusCode, string(respBody))
		return &sandbox.ExecutionResponse{Error: code}, nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("jobe: run http status %d: %s", resp.StatusCode, string(respBody))
	}

	var result runResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("jobe: decode run response: %w", err)
	}
	return &sandbox.ExecutionResponse{
		Error:   sandbox.ErrorOK,
		Result:  result.Outcome,
		Cmpinfo: result.Cmpinfo,
		Output:  result.Stdout,
		Stderr:  result.Stderr,
	}, nil
}

// Languages implements sandbox.Provider, serving from the TTL cache when
// fresh.
func (c *Client) Languages(ctx context.Context) ([]string, error) {
	c.langMu.RLock()
	if c.languages != nil && (c.langTTL <= 0 || c.clock().Sub(c.langLastRef) < c.langTTL) {
		cached := make([]string, len(c.languages))
		copy(cached, c.languages)
		c.langMu.RUnlock()
		return cached, nil
	}
	c.langMu.RUnlock()

	// Jobe reports languages as [name, version] pairs.
	var pairs [][]string
	if err := c.doGet(ctx, languagesPath, &pairs); err != nil {
		return nil, err
	}
	langs := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) > 0 && pair[0] != "" {
			langs = append(langs, pair[0])
		}
	}

	c.langMu.Lock()
	c.languages = langs
	c.langLastRef = c.clock()
	c.langMu.Unlock()

	out := make([]string, len(langs))
	copy(out, langs)
	return out, nil
}

// doGet queries a read-only endpoint with retries and doubling backoff.
func (c *Client) doGet(ctx context.Context, path string, result any) error {
	backoff := defaultRetryBackoff
	var lastErr error
	for attempt := 0; attempt < maxRetryAttempts; attempt++ {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return fmt.Errorf("jobe: build request: %w", err)
		}
		c.setHeaders(httpReq)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
		} else {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("jobe: read response: %w", readErr)
			} else if resp.StatusCode < http.StatusOK || resp.StatusCode >= 300 {
				lastErr = fmt.Errorf("jobe: http status %d: %s", resp.StatusCode, string(body))
			} else if result != nil {
				if err := json.Unmarshal(body, result); err != nil {
					return fmt.Errorf("jobe: decode response: %w", err)
				}
				return nil
			} else {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("jobe: request failed")
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}
}

// statusToSandboxError maps protocol-level HTTP rejections onto sandbox
// error codes. Statuses outside this table are treated as local failures.
func statusToSandboxError(status int) (int, bool) {
	switch status {
	case http.StatusUnauthorized:
		return sandbox.ErrorAccessDenied, true
	case http.StatusForbidden:
		return sandbox.ErrorForbidden, true
	case http.StatusBadRequest:
		// Jobe rejects unsupported language_id values with 400.
		return sandbox.ErrorUnknownLanguage, true
	case http.StatusTooManyRequests:
		return sandbox.ErrorSubmissionLimit, true
	case http.StatusServiceUnavailable:
		return sandbox.ErrorServerOverload, true
	}
	return 0, false
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
