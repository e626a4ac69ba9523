package crawler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"css-catalog/internal/hostman"
	"css-catalog/internal/metrics"
)

// ErrDisallowed is returned for URLs robots.txt forbids.
var ErrDisallowed = errors.New("disallowed by robots.txt")

const maxBody = 4 << 20 // 4 MiB safety cap

// fetcher issues polite GET requests: robots check, then token bucket, then fetch.
type fetcher struct {
	client *http.Client
	hosts  *hostman.Manager
	ua     string
}

func (f *fetcher) get(ctx context.Context, raw string) ([]byte, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	allowed, wait := f.hosts.Check(ctx, u)
	if !allowed {
		return nil, fmt.Errorf("%s: %w", raw, ErrDisallowed)
	}
	if err := wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.ua)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s: unexpected status %s", raw, resp.Status)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}
	metrics.BytesFetched.Add(float64(len(b)))
	metrics.PagesFetched.Inc()
	return b, nil
}
