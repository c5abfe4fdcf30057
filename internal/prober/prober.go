// Package prober polls a URL until it answers with HTTP 200 or a fixed retry
// budget runs out.
package prober

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

const (
	userAgent = "ping-url"
	// maxDrain caps how much of a response body is read before closing it.
	maxDrain = 64 << 10
)

// Prober issues GET requests against a target and waits a fixed delay
// between failed attempts.
type Prober struct {
	client  *http.Client
	clock   quartz.Clock
	logger  *log.Logger
	timeout time.Duration
}

// Option configures a Prober.
type Option func(*Prober)

// WithClient sets the HTTP client used for attempts. The client's own
// timeout applies; WithTimeout is ignored.
func WithClient(c *http.Client) Option {
	return func(p *Prober) {
		p.client = c
	}
}

// WithClock sets the clock used to wait between attempts.
func WithClock(c quartz.Clock) Option {
	return func(p *Prober) {
		p.clock = c
	}
}

// WithTimeout sets the per-request network timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		p.timeout = d
	}
}

// New creates a Prober that reports progress on logger.
func New(logger *log.Logger, opts ...Option) *Prober {
	p := &Prober{
		clock:   quartz.NewReal(),
		logger:  logger,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: p.timeout}
	}
	return p
}

// Probe runs one probe cycle against cfg.URL. It makes at most cfg.MaxTrials
// attempts, returns as soon as one answers 200, and gives up immediately on a
// malformed URL.
func (p *Prober) Probe(ctx context.Context, cfg Config) Result {
	res := Result{URL: cfg.URL, Outcome: Unreachable}
	start := p.clock.Now()
	delay := strconv.FormatFloat(cfg.Delay.Seconds(), 'f', -1, 64)

	for trial := 0; trial < cfg.MaxTrials; trial++ {
		res.Attempts = trial + 1
		p.logger.Debug("Probing", "url", cfg.URL, "attempt", res.Attempts, "maxTrials", cfg.MaxTrials)

		status, err := p.get(ctx, cfg.URL)
		switch {
		case errors.Is(err, ErrInvalidURL):
			p.logger.With("error", err).Errorf("Invalid URL: %s. Please provide a valid URL.", cfg.URL)
			res.Outcome = InvalidURL
			res.LastErr = err
			return res

		case err != nil && ctx.Err() != nil:
			res.LastErr = ctx.Err()
			return res

		case err != nil:
			res.LastErr = err
			p.logger.With("error", err).Warnf("Website %s is not reachable. Retrying in %s seconds...", cfg.URL, delay)

		case status == http.StatusOK:
			res.Outcome = Reachable
			res.LastStatus = status
			p.logger.Debug("Received 200", "url", cfg.URL, "attempt", res.Attempts, "elapsed", p.clock.Since(start))
			return res

		default:
			res.LastStatus = status
			p.logger.Warnf("Website %s returned status %d. Retrying in %s seconds...", cfg.URL, status, delay)
		}

		if err := p.wait(ctx, cfg.Delay); err != nil {
			res.LastErr = err
			return res
		}
	}

	p.logger.Debug("Retry budget exhausted", "url", cfg.URL, "attempts", res.Attempts, "elapsed", p.clock.Since(start))
	return res
}

// get performs a single attempt and returns the response status code.
func (p *Prober) get(ctx context.Context, target string) (int, error) {
	if err := checkURL(target); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	return resp.StatusCode, nil
}

func (p *Prober) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := p.clock.NewTimer(d, "prober", "wait")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// checkURL accepts absolute http and https URLs with a host.
func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	switch {
	case u.Scheme == "":
		return fmt.Errorf("%w: missing scheme in %q", ErrInvalidURL, raw)
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%w: missing host in %q", ErrInvalidURL, raw)
	}
	return nil
}
