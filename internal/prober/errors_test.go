package prober

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultErr(t *testing.T) {
	t.Parallel()

	t.Run("reachable", func(t *testing.T) {
		res := Result{URL: "https://example.com", Outcome: Reachable, Attempts: 1, LastStatus: 200}
		assert.NoError(t, res.Err())
	})

	t.Run("exhausted", func(t *testing.T) {
		dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}
		res := Result{URL: "https://example.com", Outcome: Unreachable, Attempts: 10, LastErr: dialErr}

		err := res.Err()
		require.Error(t, err)
		assert.Equal(t, "website https://example.com is not reachable after 10 attempts", err.Error())
		assert.ErrorIs(t, err, ErrUnreachable)
		assert.ErrorIs(t, err, syscall.ECONNREFUSED)
		assert.NotErrorIs(t, err, ErrInvalidURL)

		var unreachable *UnreachableError
		require.ErrorAs(t, err, &unreachable)
		assert.Equal(t, 10, unreachable.Result.Attempts)
	})

	t.Run("invalid url", func(t *testing.T) {
		cause := fmt.Errorf("%w: missing scheme in %q", ErrInvalidURL, "example.com")
		res := Result{URL: "example.com", Outcome: InvalidURL, Attempts: 1, LastErr: cause}

		err := res.Err()
		require.Error(t, err)
		assert.Equal(t, `website example.com is not reachable: invalid URL: missing scheme in "example.com"`, err.Error())
		assert.ErrorIs(t, err, ErrInvalidURL)
		assert.NotErrorIs(t, err, ErrUnreachable)
	})

	t.Run("wrapped by caller", func(t *testing.T) {
		err := fmt.Errorf("health check: %w", Result{URL: "http://svc", Attempts: 3}.Err())
		assert.True(t, errors.Is(err, ErrUnreachable))

		var unreachable *UnreachableError
		require.True(t, errors.As(err, &unreachable))
		assert.Equal(t, "http://svc", unreachable.URL)
	})
}
