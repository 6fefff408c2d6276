package cleaner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackchuka/devsweep/internal/model"
)

var (
	// ErrArtifactMissing is returned by Clean when there is nothing to remove.
	ErrArtifactMissing = errors.New("artifact directory not found")

	// ErrUnknownCleaner is returned by Select for a name no cleaner answers to.
	ErrUnknownCleaner = errors.New("unknown cleaner")
)

// Cleaner detects one kind of project and reclaims its build artifacts.
// Detect and Cleanable never touch the filesystem beyond reading it; only
// Clean may delete or start an external tool. Callers must only Clean an
// entry that was detected.
type Cleaner interface {
	Name() string
	Detect(entry model.Entry) model.Detection
	Cleanable(entry model.Entry) (uint64, bool)
	Clean(ctx context.Context, entry model.Entry) error

	// Artifact returns the directory Clean reclaims for entry.
	Artifact(entry model.Entry) string
	// Describe returns the shell equivalent of Clean, for echoing.
	Describe(entry model.Entry) string
}

type Options struct {
	// Wait makes tool-based cleaners run to completion and report a
	// non-zero exit instead of starting the tool and moving on.
	Wait bool
	// CargoPath overrides the cargo executable.
	CargoPath string
}

// Default returns every known cleaner in scan order.
func Default(opts Options) []Cleaner {
	return []Cleaner{
		NewRust(opts),
		NewNode(),
	}
}

func Names(cleaners []Cleaner) []string {
	names := make([]string, len(cleaners))
	for i, c := range cleaners {
		names[i] = c.Name()
	}
	return names
}

// Select keeps the cleaners whose names appear in names, compared without
// case, preserving the order of all. An empty names list keeps everything.
func Select(all []Cleaner, names []string) ([]Cleaner, error) {
	if len(names) == 0 {
		return all, nil
	}

	for _, n := range names {
		if find(all, n) == nil {
			return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownCleaner, n, strings.Join(Names(all), ", "))
		}
	}

	var selected []Cleaner
	for _, c := range all {
		for _, n := range names {
			if strings.EqualFold(c.Name(), n) {
				selected = append(selected, c)
				break
			}
		}
	}
	return selected, nil
}

func find(all []Cleaner, name string) Cleaner {
	for _, c := range all {
		if strings.EqualFold(c.Name(), name) {
			return c
		}
	}
	return nil
}
