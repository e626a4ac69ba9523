// Package pipeline runs the populate step: stored pages in, catalog out.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"css-catalog/internal/catalog"
	"css-catalog/internal/item"
	"css-catalog/internal/metrics"
	"css-catalog/internal/parser"
	"css-catalog/internal/record"
	"css-catalog/internal/storage"
)

type Options struct {
	Output          string
	Compress        bool
	Topics          []catalog.Topic
	WebPlatformBase string
}

// Result summarises one populate run.
type Result struct {
	Items      int    // records written
	Skipped    int    // items without a readable primary page
	Entries    int    // updates array length, topics included
	Compressed string // path of the compressed copy, if any
}

// Populate assembles a record for every stored item, in natural name order,
// and writes the catalog to opts.Output, replacing any previous file. Each
// record is also mirrored to sink when it is enabled.
func Populate(ctx context.Context, opts Options, docs *storage.Documents, sink *storage.Sink, log *zap.Logger) (res Result, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	if sink == nil {
		sink = &storage.Sink{}
	}
	names, err := docs.Items()
	if err != nil {
		return res, fmt.Errorf("list stored items: %w", err)
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return res, fmt.Errorf("create catalog: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w, err := catalog.NewWriter(f, opts.Topics)
	if err != nil {
		return res, fmt.Errorf("write catalog header: %w", err)
	}

	asm := record.NewAssembler(log, opts.WebPlatformBase)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rec, err := load(asm, docs, name, log)
		if err != nil {
			log.Warn("Skipping item", zap.String("item", name), zap.Error(err))
			metrics.ItemsSkipped.Inc()
			res.Skipped++
			continue
		}
		if err := w.Write(rec); err != nil {
			return res, err
		}
		if err := sink.Put(ctx, rec); err != nil {
			log.Warn("MongoDB mirror failed", zap.String("item", name), zap.Error(err))
		}
		res.Items++
	}

	if err := w.Close(); err != nil {
		return res, fmt.Errorf("finish catalog: %w", err)
	}
	res.Entries = w.Count()
	log.Info("Catalog written",
		zap.String("path", opts.Output),
		zap.Int("items", res.Items),
		zap.Int("skipped", res.Skipped),
		zap.Int("entries", res.Entries))

	if opts.Compress {
		if err := f.Sync(); err != nil {
			return res, err
		}
		res.Compressed, err = compressFile(opts.Output)
		if err != nil {
			return res, fmt.Errorf("compress catalog: %w", err)
		}
		log.Info("Compressed copy written", zap.String("path", res.Compressed))
	}
	return res, nil
}

// load reads and assembles one item. Only an unusable primary page is an error.
func load(asm *record.Assembler, docs *storage.Documents, name string, log *zap.Logger) (record.Record, error) {
	body, uri, err := docs.LoadPrimary(name)
	if err != nil {
		return nil, err
	}
	primary, err := parser.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrMissingDocument, name, err)
	}

	var secondary parser.DocumentView
	if item.Classify(name) == item.Property {
		secondary = loadSecondary(docs, name, log)
	}
	return asm.Assemble(name, primary, secondary, uri), nil
}

// loadSecondary returns nil when the secondary page is absent or unreadable;
// only the values field depends on it.
func loadSecondary(docs *storage.Documents, name string, log *zap.Logger) parser.DocumentView {
	body, err := docs.LoadSecondary(name)
	if err != nil {
		log.Debug("No secondary page", zap.String("item", name), zap.Error(err))
		return nil
	}
	doc, err := parser.ParseBytes(body)
	if err != nil {
		log.Debug("Unreadable secondary page", zap.String("item", name),
			zap.Error(fmt.Errorf("%w: %w", storage.ErrMissingOptionalDocument, err)))
		return nil
	}
	return doc
}
