// internal/model/project.go
package model

import (
	"os"
	"path/filepath"
	"time"
)

// Entry is a snapshot of one workspace child taken when the scan reaches it.
// It is never re-validated afterwards.
type Entry struct {
	Path    string    // Absolute path to the directory
	IsDir   bool      // Resolved through symlinks
	ModTime time.Time // Last modification time of the directory itself
}

func EntryFromInfo(path string, info os.FileInfo) Entry {
	return Entry{
		Path:    path,
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}
}

func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Join returns a path inside the entry.
func (e Entry) Join(elem ...string) string {
	return filepath.Join(append([]string{e.Path}, elem...)...)
}

type DetectionStatus int

const (
	NotApplicable DetectionStatus = iota // not a project of this kind
	Inconclusive                         // could not be checked
	Detected                             // marker found, artifact sized
)

func (s DetectionStatus) String() string {
	switch s {
	case Detected:
		return "detected"
	case Inconclusive:
		return "inconclusive"
	default:
		return "not applicable"
	}
}

// Detection is the outcome of running one cleaner against one entry.
type Detection struct {
	Status DetectionStatus
	Size   uint64 // Bytes under the artifact directory, valid when Detected
	Err    error  // Cause, set when Inconclusive
}

func NotDetected() Detection {
	return Detection{Status: NotApplicable}
}

func DetectedSize(size uint64) Detection {
	return Detection{Status: Detected, Size: size}
}

func Unknown(err error) Detection {
	return Detection{Status: Inconclusive, Err: err}
}

// Cleanable collapses the detection into the size-or-nothing form the
// driver reports on.
func (d Detection) Cleanable() (uint64, bool) {
	if d.Status != Detected {
		return 0, false
	}
	return d.Size, true
}

// Finding records a positive detection and, for live runs, what cleaning it
// did.
type Finding struct {
	Cleaner  string // Cleaner name, e.g. "Rust"
	Entry    Entry
	Artifact string // Absolute path of the artifact directory
	Size     uint64

	Cleaned bool  // Clean was invoked and returned without error
	Err     error // Clean failure, if any
}

func (f *Finding) DisplayName() string {
	return f.Entry.Name()
}

func (f *Finding) Failed() bool {
	return f.Err != nil
}
