package spotify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

// doRequestWithRetry executes req, retrying transient failures (network
// errors, 429, 5xx) with exponential backoff. Retry-After headers take
// precedence over the computed backoff. Auth failures are classified and
// returned immediately; they are never transient.
func (c *Client) doRequestWithRetry(req *http.Request) (*http.Response, error) {
	if req.Body != nil && req.GetBody == nil {
		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("spotify adapter: read request body: %w", err)
		}
		_ = req.Body.Close()
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(bodyBytes)), nil
		}
	}

	ctx := req.Context()
	var lastStatus int
	var lastRetryAfter string

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("spotify adapter: request canceled: %w", err)
		}

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("spotify adapter: reset request body: %w", err)
			}
			req.Body = body
		}

		resp, err := c.httpClient.Do(req)
		if err == nil && isAuthStatus(resp.StatusCode) {
			status := resp.StatusCode
			_ = resp.Body.Close()
			return nil, &ports.AuthError{Status: status}
		}

		retryAfter, retry := shouldRetry(resp, err)
		if !retry {
			return resp, err
		}

		if err != nil {
			c.logger.Printf("WARN spotify adapter: retry attempt %d/%d after error: %v", attempt+1, c.maxRetries, err)
			lastStatus = 0
		} else {
			c.logger.Printf("WARN spotify adapter: retry attempt %d/%d after status %d", attempt+1, c.maxRetries, resp.StatusCode)
			lastStatus = resp.StatusCode
			lastRetryAfter = resp.Header.Get("Retry-After")
			_ = resp.Body.Close()
		}

		if attempt == c.maxRetries-1 {
			if lastStatus == http.StatusTooManyRequests {
				return nil, &ports.RateLimitError{RetryAfter: lastRetryAfter}
			}
			if err != nil {
				return nil, fmt.Errorf("spotify adapter: request failed after %d attempts: %w", c.maxRetries, err)
			}
			return nil, fmt.Errorf("spotify adapter: request failed after %d attempts: status %d", c.maxRetries, lastStatus)
		}

		backoff := c.baseBackoff * time.Duration(1<<attempt)
		if retryAfter > 0 {
			backoff = retryAfter
		}
		if serr := sleepWithContext(ctx, backoff); serr != nil {
			return nil, serr
		}
	}

	return nil, fmt.Errorf("spotify adapter: request failed after %d attempts", c.maxRetries)
}

func isAuthStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

func shouldRetry(resp *http.Response, err error) (time.Duration, bool) {
	if err != nil {
		return 0, true
	}
	if resp == nil {
		return 0, false
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return parseRetryAfter(resp), true
	}
	return 0, false
}

func parseRetryAfter(resp *http.Response) time.Duration {
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if when, err := http.ParseTime(retryAfter); err == nil {
		if until := time.Until(when); until > 0 {
			return until
		}
	}

	return 0
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("spotify adapter: request canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
