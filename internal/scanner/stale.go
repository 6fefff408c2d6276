package scanner

import (
	"time"

	"github.com/jackchuka/devsweep/internal/model"
)

// IsStale reports whether entry is a directory whose last modification is
// more than threshold before now. Elapsed time is counted in whole seconds.
// A modification time in the future is never stale.
func IsStale(entry model.Entry, now time.Time, threshold time.Duration) bool {
	if !entry.IsDir || entry.ModTime.IsZero() {
		return false
	}
	elapsed := now.Sub(entry.ModTime)
	if elapsed < 0 {
		return false
	}
	return elapsed.Truncate(time.Second) > threshold
}
