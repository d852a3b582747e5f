package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"iconhive/metrics"
)

// maxUpstreamBody bounds how much of an upstream response is read into memory
const maxUpstreamBody = 16 << 20

// NewHTTPClient returns the client used for every upstream call. It has no cookie jar,
// so icon requests are made anonymously.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// upstreamGet performs a GET and returns the body of a 200 response
func upstreamGet(ctx context.Context, client *http.Client, url string, source string) ([]byte, error) {
	startTime := time.Now()
	status := "error"
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(source, status).Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", source, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", source, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch data from %s: %s", source, resp.Status)
	}

	body, err := readLimited(resp.Body, maxUpstreamBody)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", source, err)
	}
	return body, nil
}

// errResponseTooLarge is returned for bodies longer than the read limit
var errResponseTooLarge = errors.New("response too large")

// readLimited reads all of r, failing instead of truncating when it holds more than limit bytes
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", errResponseTooLarge, limit)
	}
	return body, nil
}
