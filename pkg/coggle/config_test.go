package coggle

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid config",
			config: &Config{
				BaseURL: "https://coggle.it",
				Token:   "valid-token",
			},
		},
		{
			name: "Missing base URL",
			config: &Config{
				Token: "valid-token",
			},
			wantError: true,
			errorMsg:  "base_url",
		},
		{
			name: "Missing token",
			config: &Config{
				BaseURL: "https://coggle.it",
			},
			wantError: true,
			errorMsg:  "token",
		},
		{
			name: "Invalid URL scheme",
			config: &Config{
				BaseURL: "ftp://coggle.it",
				Token:   "valid-token",
			},
			wantError: true,
			errorMsg:  "scheme",
		},
		{
			name: "Negative timeout",
			config: &Config{
				BaseURL: "https://coggle.it",
				Token:   "valid-token",
				Timeout: -1 * time.Second,
			},
			wantError: true,
			errorMsg:  "timeout",
		},
		{
			name: "Negative max retries",
			config: &Config{
				BaseURL:    "https://coggle.it",
				Token:      "valid-token",
				MaxRetries: -1,
			},
			wantError: true,
			errorMsg:  "max_retries",
		},
		{
			name: "Unsupported node update method",
			config: &Config{
				BaseURL:          "https://coggle.it",
				Token:            "valid-token",
				NodeUpdateMethod: "PATCH",
			},
			wantError: true,
			errorMsg:  "node_update_method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateReportsAllProblems(t *testing.T) {
	cfg := &Config{MaxRetries: -2}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required")
	assert.Contains(t, err.Error(), "token is required")
	assert.Contains(t, err.Error(), "max_retries")
}

func TestConfig_NewHTTPClient(t *testing.T) {
	t.Run("verifies TLS by default", func(t *testing.T) {
		cfg := DefaultConfig()
		client := cfg.NewHTTPClient()

		assert.Equal(t, 30*time.Second, client.Timeout)
		assert.NotNil(t, client.Transport)
	})

	t.Run("skips verification when disabled", func(t *testing.T) {
		tlsVerify := false
		cfg := &Config{TLSVerify: &tlsVerify, Timeout: time.Second}
		client := cfg.NewHTTPClient()

		transport, ok := client.Transport.(*http.Transport)
		require.True(t, ok)
		require.NotNil(t, transport.TLSClientConfig)
		assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
	})
}
