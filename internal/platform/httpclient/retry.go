package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/jsamuelsen11/task-service/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// doWithRetry sends req up to maxAttempts times with jittered exponential
// backoff between attempts. Whether another attempt is allowed depends on the
// method: idempotent requests retry on transport errors, 429 and 5xx;
// POST and PATCH retry only when the connection could not be established, so
// a batch the server may already have committed is never sent twice.
//
// The final response is written to resp. When it carries a 429 or 5xx, resp
// keeps its body open and the returned error is non-nil, so the breaker
// counts the failure and the caller can still read the remote's error body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= c.retryCfg.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return err
			}
		}
		body.rewind(req)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !retryAfterError(req.Method, err) {
				return err
			}
			continue
		}

		if !serverFailure(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if !idempotent(req.Method) || attempt == c.retryCfg.maxAttempts {
			*resp = r
			return lastErr
		}
		discard(r)
	}
	return lastErr
}

// requestBody holds a buffered request body so each attempt sends the same
// bytes. A nil snapshot leaves the request untouched.
type requestBody struct {
	data []byte
}

func snapshotBody(req *http.Request) (*requestBody, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return &requestBody{data: data}, nil
}

func (b *requestBody) rewind(req *http.Request) {
	if b == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(b.data))
	req.ContentLength = int64(len(b.data))
}

// discard drains and closes r so the connection can be reused.
func discard(r *http.Response) {
	_, _ = io.Copy(io.Discard, r.Body)
	_ = r.Body.Close()
}

// pause logs the upcoming attempt and sleeps for its backoff, returning early
// with the context error if ctx ends first.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := c.retryCfg.delay(attempt - 1)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// delay returns the wait before the nth retry (n starts at 1): the initial
// interval grown by multiplier per retry, capped at maxInterval, then
// jittered.
func (rc retryConfig) delay(n int) time.Duration {
	base := math.Min(
		float64(rc.initialInterval)*math.Pow(rc.multiplier, float64(n-1)),
		float64(rc.maxInterval),
	)
	jittered := base * (1 + jitterFraction*(2*unitRand()-1))
	return time.Duration(math.Max(jittered, 0))
}

// unitRand returns a uniform float64 in [0, 1) from crypto/rand. The top 53
// bits of a random uint64 fill the float64 mantissa exactly.
func unitRand() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0.5
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// idempotent reports whether repeating a request with method cannot change
// the outcome on the server.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace,
		http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// retryAfterError reports whether a transport error allows another attempt.
// Cancellation and deadlines never do. Idempotent requests retry any other
// error; the rest only retry when nothing reached the server.
func retryAfterError(method string, err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if idempotent(method) {
		return true
	}
	return neverSent(err)
}

// neverSent reports whether err happened while resolving or dialing the
// remote, before any byte of the request was written.
func neverSent(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// serverFailure reports whether status is 429 or a 5xx.
func serverFailure(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
