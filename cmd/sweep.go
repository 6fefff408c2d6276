package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jackchuka/devsweep/internal/cleaner"
	"github.com/jackchuka/devsweep/internal/config"
	"github.com/jackchuka/devsweep/internal/diskusage"
	"github.com/jackchuka/devsweep/internal/logging"
	"github.com/jackchuka/devsweep/internal/report"
	"github.com/jackchuka/devsweep/internal/scanner"
	"github.com/jackchuka/devsweep/tui"
)

var errNotTerminal = errors.New("--interactive needs a terminal")

func newLogger(cfg *config.Config, verbose bool) (*slog.Logger, io.Closer, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(logging.Options{Level: level, File: cfg.LogFile})
}

func cleanersFor(cfg *config.Config) ([]cleaner.Cleaner, error) {
	all := cleaner.Default(cleaner.Options{
		Wait:      cfg.WaitForClean,
		CargoPath: cfg.CargoPath,
	})
	return cleaner.Select(all, cfg.Cleaners)
}

// runSweep scans the workspace, prints a line per finding and a summary, and
// reclaims space unless cfg.DryRun is set.
func runSweep(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer, quiet bool) error {
	cleaners, err := cleanersFor(cfg)
	if err != nil {
		return err
	}

	p := report.NewPrinter(out)
	p.SetQuiet(quiet)
	p.Header(cfg.Root, cfg.DryRun)

	w := scanner.FromConfig(cfg, cleaners,
		scanner.WithLogger(logger),
		scanner.WithCallbacks(p.Callbacks(cleaners)),
	)
	res, err := w.Scan(ctx)
	if err != nil {
		return err
	}

	logger.Debug("scan finished",
		"root", res.Root,
		"candidates", res.Candidates,
		"findings", len(res.Findings),
		"skipped", len(res.Skipped),
		"duration", res.Duration)

	return finish(ctx, p, cfg, res, logger)
}

// runReview scans without cleaning, lets the user choose findings, then
// reclaims the chosen ones unless cfg.DryRun is set.
func runReview(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	cleaners, err := cleanersFor(cfg)
	if err != nil {
		return err
	}

	p := report.NewPrinter(out)
	w := scanner.FromConfig(cfg, cleaners,
		scanner.WithDryRun(true),
		scanner.WithLogger(logger),
		scanner.WithCallbacks(p.Callbacks(cleaners)),
	)
	p.SetQuiet(true)
	scan, err := w.Scan(ctx)
	if err != nil {
		return err
	}
	p.SetQuiet(false)

	selected, err := tui.Run(scan.Findings, cfg.DryRun)
	if err != nil {
		return err
	}
	if selected == nil {
		fmt.Fprintln(out, "Nothing selected.")
		return nil
	}

	p.Header(cfg.Root, cfg.DryRun)
	if cfg.DryRun {
		res := &scanner.Result{Root: cfg.Root, DryRun: true, Findings: selected}
		for _, f := range selected {
			p.Finding(f)
			res.Reclaimable += f.Size
		}
		return finish(ctx, p, cfg, res, logger)
	}

	res := w.Clean(ctx, selected)
	return finish(ctx, p, cfg, res, logger)
}

func finish(ctx context.Context, p *report.Printer, cfg *config.Config, res *scanner.Result, logger *slog.Logger) error {
	p.Summary(res)

	if u, err := diskusage.Free(ctx, cfg.Root); err == nil {
		p.FreeSpace(u)
	} else {
		logger.Debug("free space unavailable", "root", cfg.Root, "err", err)
	}

	if n := len(res.Failures()); n > 0 {
		return fmt.Errorf("%d cleanup(s) failed", n)
	}
	return nil
}
