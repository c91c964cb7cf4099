package clients

import (
	"net/http"
	"time"

	"snarkify-prover/internal/metrics"
)

// retryPolicy exponential backoff bounds for transient transport
// failures. Delays start at half the configured base wait and double per
// attempt up to the base wait itself.
type retryPolicy struct {
	maxRetries int
	minDelay   time.Duration
	maxDelay   time.Duration
}

func newRetryPolicy(retryWait time.Duration, maxRetries int) retryPolicy {
	return retryPolicy{
		maxRetries: maxRetries,
		minDelay:   retryWait / 2,
		maxDelay:   retryWait,
	}
}

// delay returns the backoff before retry attempt n (0-based)
func (p retryPolicy) delay(attempt int) time.Duration {
	d := p.minDelay << uint(attempt)
	if d > p.maxDelay || d <= 0 {
		d = p.maxDelay
	}
	return d
}

// retryTransport wraps an http.RoundTripper with the retry policy.
// Only transport-level failures (connection refused/reset, DNS, dropped
// connections) are retried. Any HTTP response is final here: a non-2xx
// status is the server explicitly rejecting the request, and masking it
// as transient would hide real service failures.
type retryTransport struct {
	next   http.RoundTripper
	policy retryPolicy
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= t.policy.maxRetries; attempt++ {
		sendReq := req
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(t.policy.delay(attempt - 1)):
			}

			// re-send on a clone with a rewound body; the original
			// request must not be mutated
			sendReq = req.Clone(req.Context())
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				sendReq.Body = body
			}

			metrics.SnarkifyRetriesTotal.WithLabelValues(req.Method).Inc()
		}

		resp, err := t.next.RoundTrip(sendReq)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// the per-request deadline also bounds retries: once the
		// context is done the failure is no longer transient
		if req.Context().Err() != nil {
			break
		}
	}

	return nil, lastErr
}
