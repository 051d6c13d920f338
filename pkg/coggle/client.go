package coggle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

// Client issues authenticated requests against the Coggle REST API.
//
// A Client holds no mutable state after construction and is safe for
// concurrent use. Diagram and Node handles keep a pointer to the Client that
// produced them.
type Client struct {
	baseURL          string
	tokens           oauth2.TokenSource
	httpClient       *http.Client
	logger           hclog.Logger
	maxRetries       int
	retryDelay       time.Duration
	nodeUpdateMethod string
}

// NewClient creates a new Coggle API client. Zero-valued config fields are
// replaced by their defaults before validation.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coggle client config: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cfg.NewHTTPClient()
	}

	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		tokens:           cfg.tokenSource(),
		httpClient:       httpClient,
		logger:           cfg.Logger.Named("coggle-client"),
		maxRetries:       cfg.MaxRetries,
		retryDelay:       cfg.RetryDelay,
		nodeUpdateMethod: cfg.NodeUpdateMethod,
	}, nil
}

// BaseURL returns the service base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the JSON response into result.
//
// query is an un-encoded query-string fragment such as "foo=bar"; it is
// appended after the access token. A leading "&" is optional.
func (c *Client) Get(ctx context.Context, endpoint, query string, result any) error {
	return c.do(ctx, http.MethodGet, endpoint, query, nil, result)
}

// Post issues a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, endpoint, query string, body, result any) error {
	return c.do(ctx, http.MethodPost, endpoint, query, body, result)
}

// Put issues a PUT request with body encoded as JSON.
func (c *Client) Put(ctx context.Context, endpoint, query string, body, result any) error {
	return c.do(ctx, http.MethodPut, endpoint, query, body, result)
}

// Delete issues a DELETE request. result may be nil.
func (c *Client) Delete(ctx context.Context, endpoint, query string, result any) error {
	return c.do(ctx, http.MethodDelete, endpoint, query, nil, result)
}

// do executes a request, retrying retryable failures when configured to.
// POST requests are never retried.
func (c *Client) do(ctx context.Context, method, endpoint, query string, body, result any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &TransportError{
				Method:   method,
				Endpoint: endpoint,
				Err:      &codecError{op: "marshal request body", err: err},
			}
		}
		payload = b
	}

	requestID := uuid.NewString()
	attempt := func() error {
		return c.roundTrip(ctx, method, endpoint, query, payload, result, requestID)
	}

	if c.maxRetries == 0 || method == http.MethodPost {
		return attempt()
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryDelay
	policy.MaxElapsedTime = 0
	policy.Reset()

	var lastErr error
	err := backoff.RetryNotify(
		func() error {
			err := attempt()
			lastErr = err
			var transportErr *TransportError
			if err != nil && errors.As(err, &transportErr) && !transportErr.Retryable() {
				return backoff.Permanent(err)
			}
			return err
		},
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx),
		func(err error, wait time.Duration) {
			c.logger.Warn("retrying request",
				"method", method,
				"endpoint", endpoint,
				"request_id", requestID,
				"wait", wait,
				"error", err,
			)
		},
	)

	// The context can expire while waiting between attempts. Keep the last
	// attempt's status and cause next to the context error.
	var transportErr *TransportError
	if err != nil && ctx.Err() != nil && !errors.As(err, &transportErr) && errors.As(lastErr, &transportErr) {
		return &TransportError{
			Method:     transportErr.Method,
			Endpoint:   transportErr.Endpoint,
			StatusCode: transportErr.StatusCode,
			Body:       transportErr.Body,
			Err:        errors.Join(err, transportErr.Err),
		}
	}
	return err
}

// roundTrip sends a single request and decodes its response.
func (c *Client) roundTrip(ctx context.Context, method, endpoint, query string, payload []byte, result any, requestID string) error {
	start := time.Now()

	token, err := c.tokens.Token()
	if err != nil {
		return &TransportError{
			Method:   method,
			Endpoint: endpoint,
			Err:      fmt.Errorf("failed to obtain access token: %w", err),
		}
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(endpoint, query, token.AccessToken), bodyReader)
	if err != nil {
		return &TransportError{
			Method:   method,
			Endpoint: endpoint,
			Err:      fmt.Errorf("failed to create request: %w", redactURLError(err)),
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			"method", method,
			"endpoint", endpoint,
			"request_id", requestID,
			"duration", time.Since(start),
		)
		return &TransportError{
			Method:   method,
			Endpoint: endpoint,
			Err:      fmt.Errorf("request failed: %w", redactURLError(err)),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{
			Method:   method,
			Endpoint: endpoint,
			Err:      fmt.Errorf("failed to read response: %w", err),
		}
	}

	c.logger.Debug("request completed",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			Err:        apiErrorFromBody(respBody),
		}
	}

	if result != nil {
		if len(respBody) == 0 {
			return &TransportError{
				Method:   method,
				Endpoint: endpoint,
				Err:      &codecError{op: "decode response", err: io.ErrUnexpectedEOF},
			}
		}
		if err := json.Unmarshal(respBody, result); err != nil {
			return &TransportError{
				Method:   method,
				Endpoint: endpoint,
				Err:      &codecError{op: "decode response", err: err},
			}
		}
	}

	return nil
}

// buildURL joins the base URL, the endpoint, the access token and the
// caller's query fragment.
func (c *Client) buildURL(endpoint, query, token string) string {
	return c.baseURL + endpoint + "?access_token=" + url.QueryEscape(token) + prefixQuery(query)
}

// prefixQuery normalizes a query-string fragment so that it can follow the
// access token: "foo=bar" and "&foo=bar" both become "&foo=bar". Keys and
// values are query-escaped; an empty fragment yields "".
func prefixQuery(query string) string {
	if query == "" {
		return ""
	}
	if !strings.HasPrefix(query, "&") {
		query = "&" + query
	}

	var b strings.Builder
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, hasValue := strings.Cut(pair, "=")
		b.WriteByte('&')
		b.WriteString(url.QueryEscape(key))
		if hasValue {
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}
	return b.String()
}

// redactURLError strips the request URL, which carries the access token, from
// errors returned by net/http.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// apiErrorFromBody extracts the message of an error response.
func apiErrorFromBody(body []byte) error {
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		switch {
		case apiErr.Message != "":
			return errors.New(apiErr.Message)
		case apiErr.Error != "":
			return errors.New(apiErr.Error)
		case apiErr.Details != "":
			return errors.New(apiErr.Details)
		}
	}
	if len(body) == 0 {
		return errors.New("empty response body")
	}
	return errors.New(strings.TrimSpace(string(body)))
}
