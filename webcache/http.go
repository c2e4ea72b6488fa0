package webcache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/carlmjohnson/versioninfo"
	"golang.org/x/time/rate"

	"github.com/packrat-io/packrat/util"
)

// ErrBadStatus is returned by HTTPFetcher when the upstream responds with a
// non-2xx status.
var ErrBadStatus = errors.New("upstream returned non-success status")

// ErrBodyTooLarge is returned by HTTPFetcher when the upstream response body
// exceeds MaxBody. Oversized pages are fetch failures, never partial content.
var ErrBodyTooLarge = errors.New("upstream returned too much data")

const defaultMaxBody = 4 << 20

// HTTPFetcher fetches page bodies over HTTP with retries and an optional
// request rate limit. Bodies larger than MaxBody are rejected with
// ErrBodyTooLarge.
type HTTPFetcher struct {
	Client  *http.Client
	Limiter *rate.Limiter
	MaxBody int64
}

var _ Fetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(limiter *rate.Limiter) *HTTPFetcher {
	return &HTTPFetcher{
		Client:  util.RobustHTTPClient(),
		Limiter: limiter,
		MaxBody: defaultMaxBody,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("constructing page request: %w", err)
	}
	req.Header.Set("User-Agent", "packrat/"+versioninfo.Short())

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	maxBody := f.MaxBody
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	if resp.ContentLength > maxBody {
		return "", fmt.Errorf("%w: content-length %d", ErrBodyTooLarge, resp.ContentLength)
	}
	// read one extra byte so chunked responses over the cap are caught too
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return "", fmt.Errorf("reading page body: %w", err)
	}
	if int64(len(body)) > maxBody {
		return "", fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, maxBody)
	}
	return string(body), nil
}
