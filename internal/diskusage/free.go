package diskusage

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"
)

// Usage describes the volume holding a path.
type Usage struct {
	Path  string
	Total uint64
	Free  uint64
}

// Free reports total and available bytes on the volume that contains path.
func Free(ctx context.Context, path string) (Usage, error) {
	stat, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return Usage{}, err
	}
	return Usage{
		Path:  path,
		Total: stat.Total,
		Free:  stat.Free,
	}, nil
}
