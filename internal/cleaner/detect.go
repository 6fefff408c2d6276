package cleaner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jackchuka/devsweep/internal/diskusage"
	"github.com/jackchuka/devsweep/internal/model"
)

// markerKind is a project recognised by a marker file sitting next to a
// regenerable artifact directory, e.g. Cargo.toml and target.
type markerKind struct {
	name     string
	marker   string
	artifact string
}

func (k markerKind) Name() string {
	return k.name
}

func (k markerKind) Artifact(entry model.Entry) string {
	return entry.Join(k.artifact)
}

func (k markerKind) Cleanable(entry model.Entry) (uint64, bool) {
	return k.Detect(entry).Cleanable()
}

func (k markerKind) Detect(entry model.Entry) model.Detection {
	found, err := hasMarker(entry.Path, k.marker)
	if err != nil {
		return model.Unknown(err)
	}
	if !found {
		return model.NotDetected()
	}

	artifact := k.Artifact(entry)
	info, err := os.Stat(artifact)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NotDetected()
		}
		return model.Unknown(err)
	}
	if !info.IsDir() {
		return model.NotDetected()
	}

	size, err := diskusage.DirSize(artifact)
	if err != nil {
		return model.Unknown(err)
	}
	return model.DetectedSize(size)
}

// hasMarker reports whether dir directly contains a regular file called
// name. Children that cannot be stat'ed are skipped; the search stops at the
// first match.
func hasMarker(dir, name string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}

	for _, e := range entries {
		if e.Name() != name {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			return true, nil
		}
	}
	return false, nil
}
