// internal/crawler/engine.go
package crawler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"css-catalog/internal/frontier"
	"css-catalog/internal/hostman"
	"css-catalog/internal/item"
	"css-catalog/internal/parser"
	"css-catalog/internal/storage"
)

// Stats summarises one download run.
type Stats struct {
	Indexed   int // distinct items on the reference index
	Primary   int // primary pages fetched
	Secondary int // secondary pages fetched
	Skipped   int // pages already stored
	Failed    int // fetches that failed
}

// Run scans the reference index and stores every page that is not already
// on disk. Items are handled one at a time; a failed fetch is logged and the
// run moves on.
func Run(ctx context.Context, opts Options, docs *storage.Documents, log *zap.Logger) (Stats, error) {
	opts.prepare()
	if log == nil {
		log = zap.NewNop()
	}
	f := &fetcher{
		client: opts.Client,
		hosts:  hostman.New(opts.UserAgent, opts.RequestsPerHost, opts.RobotsTimeout, opts.Client, log),
		ua:     opts.UserAgent,
	}

	var st Stats
	log.Info("Starting download", zap.String("index", opts.indexURL()))
	index, err := f.get(ctx, opts.indexURL())
	if err != nil {
		return st, fmt.Errorf("fetch reference index: %w", err)
	}
	entries, err := parser.Listing(opts.indexURL(), index)
	if err != nil {
		return st, fmt.Errorf("parse reference index: %w", err)
	}

	// ----- Frontier ----------------------------------------------------------
	queue := frontier.NewQueue()
	visited := frontier.NewVisited()
	for _, e := range entries {
		if !visited.Add(e.Name) {
			continue
		}
		if opts.MaxItems > 0 && queue.TotalQueued() >= opts.MaxItems {
			break
		}
		queue.Enqueue(e)
	}
	st.Indexed = queue.Size()

	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		e, ok := queue.PopFront()
		if !ok {
			break
		}
		downloadItem(ctx, f, opts, docs, e, &st, log.With(zap.String("item", e.Name)))
	}

	log.Info("Done downloading",
		zap.Int("indexed", st.Indexed),
		zap.Int("primary", st.Primary),
		zap.Int("secondary", st.Secondary),
		zap.Int("skipped", st.Skipped),
		zap.Int("failed", st.Failed))
	return st, nil
}

func downloadItem(ctx context.Context, f *fetcher, opts Options, docs *storage.Documents, e parser.Entry, st *Stats, log *zap.Logger) {
	if docs.HasPrimary(e.Name) {
		log.Debug("Skipping already downloaded primary page")
		st.Skipped++
	} else if body, err := f.get(ctx, e.URL); err != nil {
		log.Warn("Can't download primary page", zap.Error(err))
		st.Failed++
	} else if err := docs.SavePrimary(e.Name, body, e.URL); err != nil {
		log.Warn("Can't store primary page", zap.Error(err))
		st.Failed++
	} else {
		log.Debug("Downloaded primary page", zap.String("url", e.URL))
		st.Primary++
	}

	suffix, ok := item.SecondaryPath(e.Name, item.Classify(e.Name))
	if !ok {
		return
	}
	if docs.HasSecondary(e.Name) {
		log.Debug("Skipping already downloaded secondary page")
		st.Skipped++
		return
	}
	u := opts.WebPlatformBase + "/" + suffix
	body, err := f.get(ctx, u)
	if err != nil {
		log.Warn("Can't download secondary page", zap.Error(err))
		st.Failed++
		return
	}
	if err := docs.SaveSecondary(e.Name, body); err != nil {
		log.Warn("Can't store secondary page", zap.Error(err))
		st.Failed++
		return
	}
	log.Debug("Downloaded secondary page", zap.String("url", u))
	st.Secondary++
}
