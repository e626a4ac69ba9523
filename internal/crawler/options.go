package crawler

import (
	"net/http"
	"time"
)

// Options configure the download step.
type Options struct {
	MDNBase         string // e.g. https://developer.mozilla.org
	IndexPath       string // reference index, relative to MDNBase
	WebPlatformBase string // secondary site root, secondary paths are appended
	MaxItems        int    // 0 = every indexed item
	RequestsPerHost float64
	RobotsTimeout   time.Duration
	FetchTimeout    time.Duration
	UserAgent       string
	Client          *http.Client // nil = new client with FetchTimeout
}

func (o *Options) prepare() {
	if o.RobotsTimeout <= 0 {
		o.RobotsTimeout = 5 * time.Second
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 15 * time.Second
	}
	if o.UserAgent == "" {
		o.UserAgent = "csscatalog/1.0"
	}
	if o.Client == nil {
		o.Client = &http.Client{Timeout: o.FetchTimeout}
	}
}

func (o *Options) indexURL() string { return o.MDNBase + o.IndexPath }
