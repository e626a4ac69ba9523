package hostman

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_RobotsPolicy(t *testing.T) {
	var robotsHits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			atomic.AddInt32(&robotsHits, 1)
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	m := New("csscatalog-test", 0, time.Second, ts.Client(), nil)
	ctx := context.Background()

	allowed, wait := m.Check(ctx, mustURL(t, ts.URL+"/en-US/docs/Web/CSS/color"))
	assert.True(t, allowed)
	require.NoError(t, wait(ctx))

	allowed, _ = m.Check(ctx, mustURL(t, ts.URL+"/private/page"))
	assert.False(t, allowed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&robotsHits))
}

func TestCheck_NoRobotsAllowsEverything(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	m := New("csscatalog-test", 100, time.Second, ts.Client(), nil)
	allowed, wait := m.Check(context.Background(), mustURL(t, ts.URL+"/anything"))
	assert.True(t, allowed)
	assert.NoError(t, wait(context.Background()))
}

func TestCheck_WaitHonoursContext(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	m := New("csscatalog-test", 0.001, time.Second, ts.Client(), nil)
	_, wait := m.Check(context.Background(), mustURL(t, ts.URL+"/a"))
	require.NoError(t, wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, wait(ctx))
}

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}
