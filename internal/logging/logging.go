package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level slog.Level
	// File, when set, receives logs through a rotating writer instead of
	// stderr.
	File string
	// MaxSizeMB and MaxAgeDays bound the rotating file. Zero picks defaults.
	MaxSizeMB  int
	MaxAgeDays int
}

// New builds the process logger. The returned closer flushes and closes the
// log file, and is a no-op when logging to stderr.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.File == "" {
		return newLogger(os.Stderr, opts.Level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, nil, err
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	maxAge := opts.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 30
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: 3,
		MaxAge:     maxAge,
		Compress:   true,
	}
	return newLogger(w, opts.Level), w, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything, for tests and library use.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
