package prober

import (
	"fmt"
	"time"
)

const (
	// DefaultDelay is the wait between attempts when none is configured.
	DefaultDelay = 5 * time.Second
	// DefaultMaxTrials is the retry budget when none is configured.
	DefaultMaxTrials = 10
	// DefaultTimeout bounds a single GET request.
	DefaultTimeout = 10 * time.Second
)

// Config describes one probe cycle. It is built once at start-up and passed
// by value.
type Config struct {
	URL       string
	Delay     time.Duration
	MaxTrials int
}

// Validate rejects negative delays and retry budgets. The URL is not checked
// here: a malformed URL is a probe outcome, not a configuration error.
func (c Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if c.MaxTrials < 0 {
		return fmt.Errorf("max trials must not be negative, got %d", c.MaxTrials)
	}
	return nil
}
