package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/coggle/pkg/coggle"
)

// Environment variables that override values from the config file.
const (
	EnvBaseURL  = "COGGLE_BASE_URL"
	EnvToken    = "COGGLE_TOKEN"
	EnvLogLevel = "COGGLE_LOG_LEVEL"
)

// EnvConfigPath names the config file when no -config flag is given.
const EnvConfigPath = "COGGLE_CONFIG"

// Config is the CLI configuration file.
//
// Example configuration (HCL):
//
//	log_level = "info"
//
//	coggle {
//	  base_url    = "https://coggle.it"
//	  token       = "..."
//	  timeout     = "30s"
//	  max_retries = 2
//	  retry_delay = "500ms"
//	}
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `hcl:"log_level,optional"`

	// Coggle configures the API client.
	Coggle *Coggle `hcl:"coggle,block"`
}

// Coggle is the coggle block of the config file.
type Coggle struct {
	BaseURL          string `hcl:"base_url,optional"`
	Token            string `hcl:"token,optional"`
	Timeout          string `hcl:"timeout,optional"`
	MaxRetries       int    `hcl:"max_retries,optional"`
	RetryDelay       string `hcl:"retry_delay,optional"`
	TLSVerify        *bool  `hcl:"tls_verify,optional"`
	NodeUpdateMethod string `hcl:"node_update_method,optional"`
}

// Load reads the HCL config file at path from fs, then applies environment
// overrides through lookupEnv. An empty path skips the file. lookupEnv
// defaults to os.LookupEnv when nil.
func Load(fs afero.Fs, path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	cfg := &Config{}
	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
		}
		if err := hclsimple.Decode(path, src, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	if cfg.Coggle == nil {
		cfg.Coggle = &Coggle{}
	}
	if val, ok := lookupEnv(EnvBaseURL); ok && val != "" {
		cfg.Coggle.BaseURL = val
	}
	if val, ok := lookupEnv(EnvToken); ok && val != "" {
		cfg.Coggle.Token = val
	}
	if val, ok := lookupEnv(EnvLogLevel); ok && val != "" {
		cfg.LogLevel = val
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// ClientConfig converts the coggle block into a client configuration.
func (c *Config) ClientConfig() (*coggle.Config, error) {
	block := c.Coggle
	if block == nil {
		block = &Coggle{}
	}

	cfg := &coggle.Config{
		BaseURL:          block.BaseURL,
		Token:            block.Token,
		MaxRetries:       block.MaxRetries,
		TLSVerify:        block.TLSVerify,
		NodeUpdateMethod: strings.ToUpper(block.NodeUpdateMethod),
	}

	if block.Timeout != "" {
		d, err := time.ParseDuration(block.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", block.Timeout, err)
		}
		cfg.Timeout = d
	}

	if block.RetryDelay != "" {
		d, err := time.ParseDuration(block.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid retry_delay %q: %w", block.RetryDelay, err)
		}
		cfg.RetryDelay = d
	}

	return cfg, nil
}
