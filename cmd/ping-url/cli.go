package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lox/ping-url/internal/logging"
	"github.com/lox/ping-url/internal/prober"
)

// CLI reads its inputs from flags or, as GitHub Actions passes them, from
// INPUT_* environment variables.
type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	URL       string           `name:"url" env:"INPUT_URL" required:"" help:"URL to probe"`
	Delay     int              `env:"INPUT_DELAY" default:"5" help:"Seconds to wait between attempts"`
	MaxTrials int              `name:"max-trials" env:"INPUT_MAX_TRIALS" default:"10" help:"Maximum number of attempts"`
	LogLevel  string           `default:"info" enum:"debug,info,warn,error" help:"Log level (debug|info|warn|error)"`
}

// Env carries process-level dependencies into Run.
type Env struct {
	Stdout        io.Writer
	DotEnvLoaded  bool
	ProberOptions []prober.Option
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	return c.Config().Validate()
}

// Config converts the parsed inputs into a probe configuration.
func (c *CLI) Config() prober.Config {
	return prober.Config{
		URL:       c.URL,
		Delay:     time.Duration(c.Delay) * time.Second,
		MaxTrials: c.MaxTrials,
	}
}

// Run probes the configured URL. It returns a *prober.UnreachableError when
// the URL is invalid or never answers 200.
func (c *CLI) Run(ctx context.Context, env Env) error {
	logger, err := logging.New(env.Stdout, c.LogLevel)
	if err != nil {
		return err
	}

	cfg := c.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if env.DotEnvLoaded {
		logger.Debug("Loaded environment variables from .env file")
	}
	logger.Debug("Starting probe", "url", cfg.URL, "delay", cfg.Delay, "maxTrials", cfg.MaxTrials)

	res := prober.New(logger, env.ProberOptions...).Probe(ctx, cfg)
	if err := res.Err(); err != nil {
		logger.Errorf("Website %s is not reachable.", cfg.URL)
		return err
	}

	logger.Infof("Website %s is reachable.", cfg.URL)
	return nil
}
