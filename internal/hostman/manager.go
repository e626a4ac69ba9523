package hostman

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HostInfo stores crawl policy & limiter for one host.
type HostInfo struct {
	robots  *robotstxt.RobotsData // nil if fetch failed
	limiter *rate.Limiter         // per-host token bucket
}

// Manager holds HostInfo for every documentation host we touch. The limiter
// takes the place of a fixed sleep between requests.
type Manager struct {
	mu        sync.RWMutex
	hosts     map[string]*HostInfo
	userAgent string
	rps       float64       // requests per second, <= 0 means unlimited
	timeout   time.Duration // robots.txt download timeout
	client    *http.Client
	log       *zap.Logger
}

// New returns a ready Manager.
func New(ua string, rps float64, robotsTimeout time.Duration, client *http.Client, log *zap.Logger) *Manager {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		userAgent: ua,
		hosts:     make(map[string]*HostInfo),
		rps:       rps,
		timeout:   robotsTimeout,
		client:    client,
		log:       log,
	}
}

// Check returns (allowed, waitFn). waitFn blocks on the host's token bucket.
func (m *Manager) Check(ctx context.Context, u *url.URL) (bool, func(ctx context.Context) error) {
	h := m.host(ctx, u)

	allowed := true
	if h.robots != nil {
		allowed = h.robots.TestAgent(pathOf(u), m.userAgent)
	}
	return allowed, h.limiter.Wait
}

func (m *Manager) host(ctx context.Context, u *url.URL) *HostInfo {
	m.mu.RLock()
	h, ok := m.hosts[u.Host]
	m.mu.RUnlock()
	if ok {
		return h
	}

	limit, burst := rate.Inf, 1
	if m.rps > 0 {
		limit = rate.Limit(m.rps)
		if b := int(m.rps); b > 1 {
			burst = b
		}
	}
	h = &HostInfo{
		limiter: rate.NewLimiter(limit, burst),
		robots:  m.fetchRobots(ctx, u.Scheme, u.Host),
	}

	m.mu.Lock()
	m.hosts[u.Host] = h
	m.mu.Unlock()
	return h
}

func pathOf(u *url.URL) string {
	p := u.EscapedPath()
	if p == "" {
		p = "/"
	}
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}

// --- helpers -------------------------------------------------------------

func (m *Manager) fetchRobots(ctx context.Context, scheme, host string) *robotstxt.RobotsData {
	robotsURL := scheme + "://" + host + "/robots.txt"

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", m.userAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		m.log.Debug("robots.txt unavailable", zap.String("host", host), zap.Error(err))
		return nil // treat as no robots file
	}
	defer resp.Body.Close()

	robots, err := robotstxt.FromResponse(resp)
	if err != nil {
		m.log.Debug("robots.txt unreadable", zap.String("host", host), zap.Error(err))
		return nil
	}
	return robots
}
