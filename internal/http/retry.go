package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Default retry configuration values.
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultMaxDelay   = 5 * time.Second
)

var errRetryableStatus = errors.New("retryable response status")

// RetryingDoer wraps a Doer and retries transport failures, rate limiting and server errors
// with exponential backoff.
type RetryingDoer struct {
	doer       Doer
	maxRetries uint64
	retryDelay time.Duration
	maxDelay   time.Duration
}

// RetryOption configures a RetryingDoer.
type RetryOption func(*RetryingDoer)

// WithMaxRetries sets the number of retries made after the first attempt.
func WithMaxRetries(n uint64) RetryOption {
	return func(d *RetryingDoer) {
		d.maxRetries = n
	}
}

// WithRetryDelay sets the delay before the first retry.
func WithRetryDelay(delay time.Duration) RetryOption {
	return func(d *RetryingDoer) {
		d.retryDelay = delay
	}
}

// WithMaxDelay caps the delay between retries.
func WithMaxDelay(delay time.Duration) RetryOption {
	return func(d *RetryingDoer) {
		d.maxDelay = delay
	}
}

// NewRetryingDoer wraps the given Doer.
func NewRetryingDoer(doer Doer, opts ...RetryOption) *RetryingDoer {
	d := &RetryingDoer{
		doer:       doer,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		maxDelay:   DefaultMaxDelay,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Do executes the request, retrying it as needed.
// If the retries are exhausted on a retryable status, the last response is returned without an error.
func (d *RetryingDoer) Do(req *http.Request) (*http.Response, error) {
	if d.doer == nil {
		return nil, errors.New("http client is nil")
	}

	ctx := req.Context()

	var (
		resp    *http.Response
		attempt int
	)

	operation := func() error {
		if resp != nil {
			_ = resp.Body.Close()
			resp = nil
		}

		attempt++

		attemptReq, err := rewind(req, attempt)
		if err != nil {
			return backoff.Permanent(err)
		}

		attemptResp, err := d.doer.Do(attemptReq)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}

			return err
		}

		resp = attemptResp
		if isRetryableStatus(attemptResp.StatusCode) {
			return fmt.Errorf("%w: %d", errRetryableStatus, attemptResp.StatusCode)
		}

		return nil
	}

	notify := func(err error, wait time.Duration) {
		slog.DebugContext(
			ctx,
			fmt.Sprintf("Request to '%s' failed; retrying in %s", req.URL.Redacted(), wait),
			"attempt",
			attempt,
			"error",
			err,
		)
	}

	err := backoff.RetryNotify(operation, d.newBackOff(req), notify)
	if resp != nil {
		return resp, nil
	}

	if err != nil {
		return nil, fmt.Errorf("request failed after %d attempt(s): %w", attempt, err)
	}

	return nil, errors.New("no response received")
}

func (d *RetryingDoer) newBackOff(req *http.Request) backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = d.retryDelay
	exponential.MaxInterval = d.maxDelay
	// attempts are bounded by count rather than elapsed time
	exponential.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exponential, d.maxRetries), req.Context())
}

// rewind returns a request that can be sent for the given attempt, restoring its body if needed.
func rewind(req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 1 || req.Body == nil || req.Body == http.NoBody {
		return req, nil
	}

	if req.GetBody == nil {
		return nil, errors.New("request body cannot be replayed for retry")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("failed to rewind request body: %w", err)
	}

	clone := req.Clone(req.Context())
	clone.Body = body

	return clone, nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
