package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when a query matches zero records.
var ErrNotFound = errors.New("record not found")

// Error wraps a record store failure with its operation and a
// transient/permanent classification. Transient failures (network trouble,
// store overload) are worth retrying; permanent ones (validation rejection,
// bad filters) are not.
type Error struct {
	Op        string
	Transient bool
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a store failure worth retrying.
func IsTransient(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Transient
}

// PostgreSQL error classes that indicate a retryable condition: connection
// exceptions (08), insufficient resources (53), plus serialization failures
// and deadlocks.
var transientPGCodes = map[string]bool{
	"40001": true,
	"40P01": true,
}

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Transient: isTransientCause(err), Err: err}
}

func isTransientCause(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	// PostgREST surfaces PostgreSQL failures as "(code) message".
	if code := pgCode(err.Error()); code != "" {
		if transientPGCodes[code] {
			return true
		}
		class := code[:2]
		return class == "08" || class == "53"
	}

	return false
}

func pgCode(msg string) string {
	if !strings.HasPrefix(msg, "(") {
		return ""
	}
	end := strings.IndexByte(msg, ')')
	if end != 6 {
		return ""
	}
	return msg[1:end]
}

// withRetry runs fn with the backoff schedule used for flaky external calls,
// giving up early on permanent failures or a dead context.
func withRetry(ctx context.Context, fn func() error) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i <= len(backoffs); i++ {
		lastErr = fn()
		if lastErr == nil || !IsTransient(lastErr) {
			return lastErr
		}
		if i == len(backoffs) {
			break
		}
		select {
		case <-time.After(backoffs[i]):
		case <-ctx.Done():
			return lastErr
		}
	}

	return fmt.Errorf("failed after %d retries: %w", len(backoffs)+1, lastErr)
}
