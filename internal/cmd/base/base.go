package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/coggle/internal/config"
	"github.com/hashicorp-forge/coggle/pkg/coggle"
)

// Command holds what every subcommand shares: the logger, the UI, and the
// sources configuration is read from.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is the file system the config file is read from.
	Fs afero.Fs

	// LookupEnv resolves environment variables.
	LookupEnv func(string) (string, bool)

	flagConfig   string
	flagBaseURL  string
	flagToken    string
	flagLogLevel string
}

// NewCommand returns a Command that reads from the OS file system and
// environment.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:       log,
		UI:        ui,
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// AddClientFlags registers the flags used to build an API client.
func (c *Command) AddClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		fmt.Sprintf("[%s] Path to an HCL config file", config.EnvConfigPath),
	)
	f.StringVar(
		&c.flagBaseURL, "base-url", "",
		fmt.Sprintf("[%s] Coggle server URL (default %s)", config.EnvBaseURL, coggle.DefaultBaseURL),
	)
	f.StringVar(
		&c.flagToken, "token", "",
		fmt.Sprintf("[%s] OAuth access token", config.EnvToken),
	)
	f.StringVar(
		&c.flagLogLevel, "log-level", "",
		fmt.Sprintf("[%s] Log level: trace, debug, info, warn or error", config.EnvLogLevel),
	)
}

// Client builds an API client from the config file, the environment and the
// client flags, in increasing order of precedence. It also applies the
// configured log level to c.Log.
func (c *Command) Client() (*coggle.Client, error) {
	lookupEnv := c.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	path := c.flagConfig
	if val, ok := lookupEnv(config.EnvConfigPath); ok && path == "" {
		path = val
	}

	cfg, err := config.Load(c.Fs, path, lookupEnv)
	if err != nil {
		return nil, err
	}
	if c.flagBaseURL != "" {
		cfg.Coggle.BaseURL = c.flagBaseURL
	}
	if c.flagToken != "" {
		cfg.Coggle.Token = c.flagToken
	}
	if c.flagLogLevel != "" {
		cfg.LogLevel = c.flagLogLevel
	}

	level := hclog.LevelFromString(cfg.LogLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	c.Log.SetLevel(level)

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}
	clientCfg.Logger = c.Log

	return coggle.NewClient(clientCfg)
}

// Context returns a context canceled on SIGINT or SIGTERM.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
