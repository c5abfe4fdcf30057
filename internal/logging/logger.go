// Package logging builds the operator-facing logger.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Prefix is prepended to every line so the output is easy to find in CI logs.
const Prefix = "ping-url"

// New returns a logger writing to w at the named level
// (debug, info, warn or error).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	logger.SetStyles(styles())
	return logger, nil
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = levelStyle("DEBUG", "63")
	s.Levels[log.InfoLevel] = levelStyle("INFO", "42")
	s.Levels[log.WarnLevel] = levelStyle("WARN", "214")
	s.Levels[log.ErrorLevel] = levelStyle("ERROR", "204")
	s.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	return s
}

func levelStyle(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		MaxWidth(5).
		Foreground(lipgloss.Color(color))
}
