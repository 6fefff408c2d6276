// internal/scanner/scanner.go
package scanner

import (
	"context"
	"errors"
	"time"

	"github.com/jackchuka/devsweep/internal/model"
)

// ErrRootUnreadable is returned when the workspace root cannot be listed.
var ErrRootUnreadable = errors.New("cannot read workspace root")

type Scanner interface {
	Scan(ctx context.Context) (*Result, error)
	Clean(ctx context.Context, findings []model.Finding) *Result
}

type Result struct {
	Root         string
	DryRun       bool
	Findings     []model.Finding
	Reclaimable  uint64      // Sum of every detected artifact size
	Reclaimed    uint64      // Sum over findings cleaned without error
	Candidates   int         // Stale directories examined
	Skipped      []ScanError // Children whose metadata could not be read
	Inconclusive []ScanError // Detections that could not be completed
	Duration     time.Duration
}

// Total is what the summary reports: reclaimable bytes for a dry run,
// reclaimed bytes otherwise.
func (r *Result) Total() uint64 {
	if r.DryRun {
		return r.Reclaimable
	}
	return r.Reclaimed
}

// Failures returns the findings whose cleanup failed.
func (r *Result) Failures() []model.Finding {
	var failed []model.Finding
	for _, f := range r.Findings {
		if f.Failed() {
			failed = append(failed, f)
		}
	}
	return failed
}

type ScanError struct {
	Path    string
	Cleaner string // Empty for entry-level errors
	Error   error
}

// Callbacks observe a scan as it happens. Any of them may be nil.
type Callbacks struct {
	OnFinding    func(f model.Finding)
	OnCleanStart func(f model.Finding)
	OnCleaned    func(f model.Finding)
	OnSkip       func(e ScanError)
}

func callSafe[T any](fn func(T), v T) {
	if fn != nil {
		fn(v)
	}
}
