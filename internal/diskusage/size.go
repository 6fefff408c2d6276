package diskusage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirSize returns the total length in bytes of every file below path.
// Entries are resolved with os.Stat, so symlinks are followed. The first
// unreadable directory or entry aborts the walk and is returned.
func DirSize(path string) (uint64, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, fmt.Errorf("read dir %s: %w", path, err)
	}

	var total uint64
	for _, e := range entries {
		child := filepath.Join(path, e.Name())
		info, err := os.Stat(child)
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", child, err)
		}

		if info.IsDir() {
			sub, err := DirSize(child)
			if err != nil {
				return 0, err
			}
			total += sub
			continue
		}
		total += uint64(info.Size())
	}

	return total, nil
}
