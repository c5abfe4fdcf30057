package prober

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable reports that every attempt in the retry budget failed.
	ErrUnreachable = errors.New("retry budget exhausted")
	// ErrInvalidURL reports a target that is not a well-formed http(s) URL.
	// It is never retried.
	ErrInvalidURL = errors.New("invalid URL")
)

// UnreachableError is returned for every failed probe cycle. Use errors.Is
// with ErrUnreachable or ErrInvalidURL to tell the causes apart.
type UnreachableError struct {
	URL    string
	Result Result
}

func (e *UnreachableError) Error() string {
	if e.Result.Outcome == InvalidURL {
		return fmt.Sprintf("website %s is not reachable: %v", e.URL, e.Result.LastErr)
	}
	return fmt.Sprintf("website %s is not reachable after %d attempts", e.URL, e.Result.Attempts)
}

func (e *UnreachableError) Unwrap() []error {
	kind := ErrUnreachable
	if e.Result.Outcome == InvalidURL {
		kind = ErrInvalidURL
	}
	if e.Result.LastErr == nil {
		return []error{kind}
	}
	return []error{kind, e.Result.LastErr}
}
