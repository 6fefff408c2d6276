// internal/scanner/walker.go
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackchuka/devsweep/internal/cleaner"
	"github.com/jackchuka/devsweep/internal/config"
	"github.com/jackchuka/devsweep/internal/logging"
	"github.com/jackchuka/devsweep/internal/model"
)

// Walker visits the immediate children of a workspace root, one at a time,
// and runs every cleaner against each stale directory.
type Walker struct {
	root       string
	cleaners   []cleaner.Cleaner
	dryRun     bool
	staleAfter time.Duration
	ignore     func(path string) bool
	now        func() time.Time
	logger     *slog.Logger
	callbacks  Callbacks
}

type Option func(*Walker)

func WithDryRun(dryRun bool) Option {
	return func(w *Walker) { w.dryRun = dryRun }
}

func WithStaleAfter(d time.Duration) Option {
	return func(w *Walker) { w.staleAfter = d }
}

func WithClock(now func() time.Time) Option {
	return func(w *Walker) { w.now = now }
}

func WithIgnore(ignore func(path string) bool) Option {
	return func(w *Walker) { w.ignore = ignore }
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Walker) { w.logger = l }
}

func WithCallbacks(cb Callbacks) Option {
	return func(w *Walker) { w.callbacks = cb }
}

// NewWalker defaults to a dry run with the 30 day threshold.
func NewWalker(root string, cleaners []cleaner.Cleaner, opts ...Option) *Walker {
	w := &Walker{
		root:       root,
		cleaners:   cleaners,
		dryRun:     true,
		staleAfter: config.DefaultStaleAfter,
		ignore:     func(string) bool { return false },
		now:        time.Now,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FromConfig builds a walker from loaded configuration.
func FromConfig(cfg *config.Config, cleaners []cleaner.Cleaner, opts ...Option) *Walker {
	base := []Option{
		WithDryRun(cfg.DryRun),
		WithStaleAfter(cfg.StaleAfter),
		WithIgnore(cfg.ShouldIgnore),
	}
	return NewWalker(cfg.Root, cleaners, append(base, opts...)...)
}

func (w *Walker) Scan(ctx context.Context) (*Result, error) {
	start := time.Now()

	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRootUnreadable, w.root, err)
	}

	res := &Result{Root: w.root, DryRun: w.dryRun}
	now := w.now()

	for _, d := range entries {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		path := filepath.Join(w.root, d.Name())

		// Skip whatever we can't stat.
		info, err := os.Stat(path)
		if err != nil {
			w.skip(res, ScanError{Path: path, Error: err})
			continue
		}

		if w.ignore(path) {
			w.logger.Debug("ignored by pattern", "path", path)
			continue
		}

		entry := model.EntryFromInfo(path, info)
		if !IsStale(entry, now, w.staleAfter) {
			continue
		}
		res.Candidates++

		for _, c := range w.cleaners {
			w.visit(ctx, res, c, entry)
		}
	}

	res.Duration = time.Since(start)
	return res, nil
}

func (w *Walker) visit(ctx context.Context, res *Result, c cleaner.Cleaner, entry model.Entry) {
	d := c.Detect(entry)
	switch d.Status {
	case model.Inconclusive:
		w.logger.Debug("detection inconclusive", "cleaner", c.Name(), "path", entry.Path, "err", d.Err)
		res.Inconclusive = append(res.Inconclusive, ScanError{Path: entry.Path, Cleaner: c.Name(), Error: d.Err})
		return
	case model.NotApplicable:
		return
	}

	f := model.Finding{
		Cleaner:  c.Name(),
		Entry:    entry,
		Artifact: c.Artifact(entry),
		Size:     d.Size,
	}
	res.Reclaimable += f.Size
	callSafe(w.callbacks.OnFinding, f)

	if !w.dryRun {
		w.clean(ctx, c, &f)
		if f.Cleaned {
			res.Reclaimed += f.Size
		}
	}
	res.Findings = append(res.Findings, f)
}

// Clean reclaims a preselected set of findings, regardless of dry-run mode.
// Failures are recorded on the returned findings and do not stop the rest.
func (w *Walker) Clean(ctx context.Context, findings []model.Finding) *Result {
	start := time.Now()
	res := &Result{Root: w.root}

	byName := make(map[string]cleaner.Cleaner, len(w.cleaners))
	for _, c := range w.cleaners {
		byName[c.Name()] = c
	}

	for _, f := range findings {
		res.Reclaimable += f.Size

		c, ok := byName[f.Cleaner]
		if !ok {
			f.Err = fmt.Errorf("%w: %q", cleaner.ErrUnknownCleaner, f.Cleaner)
			callSafe(w.callbacks.OnCleaned, f)
			res.Findings = append(res.Findings, f)
			continue
		}
		if ctx.Err() != nil {
			f.Err = ctx.Err()
			res.Findings = append(res.Findings, f)
			continue
		}

		w.clean(ctx, c, &f)
		if f.Cleaned {
			res.Reclaimed += f.Size
		}
		res.Findings = append(res.Findings, f)
	}

	res.Duration = time.Since(start)
	return res
}

func (w *Walker) clean(ctx context.Context, c cleaner.Cleaner, f *model.Finding) {
	callSafe(w.callbacks.OnCleanStart, *f)

	if err := c.Clean(ctx, f.Entry); err != nil {
		w.logger.Error("clean failed", "cleaner", c.Name(), "path", f.Entry.Path, "err", err)
		f.Err = err
	} else {
		w.logger.Info("cleaned", "cleaner", c.Name(), "path", f.Entry.Path, "bytes", f.Size)
		f.Cleaned = true
	}

	callSafe(w.callbacks.OnCleaned, *f)
}

func (w *Walker) skip(res *Result, e ScanError) {
	w.logger.Debug("skipping entry", "path", e.Path, "err", e.Error)
	res.Skipped = append(res.Skipped, e)
	callSafe(w.callbacks.OnSkip, e)
}
