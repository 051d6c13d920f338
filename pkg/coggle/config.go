package coggle

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public Coggle service.
const DefaultBaseURL = "https://coggle.it"

// Config contains configuration for the Coggle API client.
type Config struct {
	// BaseURL is the base URL of the Coggle service.
	// Default: "https://coggle.it"
	BaseURL string `json:"baseUrl"`

	// Token is the OAuth access token sent as the access_token query parameter.
	Token string `json:"-"` // Don't marshal token to JSON

	// TokenSource overrides Token when set, e.g. to refresh expired tokens.
	// It must be safe for concurrent use.
	TokenSource oauth2.TokenSource `json:"-"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for API requests.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// MaxRetries for requests failing with a retryable error. Only GET, PUT
	// and DELETE requests are retried: a POST that failed with a 5xx may still
	// have created a node or diagram. Node updates sent with the default POST
	// method are therefore not retried either.
	// Default: 0 (failures are returned to the caller)
	MaxRetries int `json:"maxRetries,omitempty"`

	// RetryDelay is the initial backoff interval when MaxRetries > 0.
	// Default: 500 milliseconds
	RetryDelay time.Duration `json:"retryDelay,omitempty"`

	// NodeUpdateMethod is the HTTP verb used for node updates (POST or PUT).
	// Default: POST
	NodeUpdateMethod string `json:"nodeUpdateMethod,omitempty"`

	// Logger receives debug logs for each request. Optional.
	Logger hclog.Logger `json:"-"`

	// HTTPClient replaces the client built by NewHTTPClient. Optional.
	HTTPClient *http.Client `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:          DefaultBaseURL,
		TLSVerify:        &tlsVerify,
		Timeout:          30 * time.Second,
		RetryDelay:       500 * time.Millisecond,
		NodeUpdateMethod: http.MethodPost,
	}
}

// applyDefaults fills zero-valued fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = defaults.RetryDelay
	}
	if c.NodeUpdateMethod == "" {
		c.NodeUpdateMethod = defaults.NodeUpdateMethod
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// Validate checks if the configuration is valid. All problems are reported
// together.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.BaseURL == "" {
		result = multierror.Append(result, fmt.Errorf("base_url is required"))
	} else {
		parsedURL, err := url.Parse(c.BaseURL)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid base_url: %w", err))
		} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			result = multierror.Append(result,
				fmt.Errorf("base_url must use http or https scheme, got: %s", parsedURL.Scheme))
		}
	}

	if c.Token == "" && c.TokenSource == nil {
		result = multierror.Append(result, fmt.Errorf("token is required"))
	}

	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be positive, got: %v", c.Timeout))
	}

	if c.MaxRetries < 0 {
		result = multierror.Append(result,
			fmt.Errorf("max_retries must be non-negative, got: %d", c.MaxRetries))
	}

	if c.RetryDelay < 0 {
		result = multierror.Append(result,
			fmt.Errorf("retry_delay must be non-negative, got: %v", c.RetryDelay))
	}

	switch c.NodeUpdateMethod {
	case "", http.MethodPost, http.MethodPut:
	default:
		result = multierror.Append(result,
			fmt.Errorf("node_update_method must be POST or PUT, got: %s", c.NodeUpdateMethod))
	}

	return result.ErrorOrNil()
}

// NewHTTPClient creates a configured HTTP client for this config
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}

// tokenSource returns the configured source, or a static one over Token.
func (c *Config) tokenSource() oauth2.TokenSource {
	if c.TokenSource != nil {
		return c.TokenSource
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.Token})
}
