package cleaner

import (
	"context"
	"fmt"

	"github.com/jackchuka/devsweep/internal/model"
)

// Rust reclaims cargo's target directory by running `cargo clean`.
type Rust struct {
	markerKind
	Tool string // cargo executable
	Wait bool
}

func NewRust(opts Options) *Rust {
	tool := opts.CargoPath
	if tool == "" {
		tool = "cargo"
	}
	return &Rust{
		markerKind: markerKind{
			name:     "Rust",
			marker:   "Cargo.toml",
			artifact: "target",
		},
		Tool: tool,
		Wait: opts.Wait,
	}
}

// Clean starts `cargo clean` inside the project. Unless Wait is set the tool
// is left running and only a failure to start it is reported.
func (r *Rust) Clean(ctx context.Context, entry model.Entry) error {
	if r.Wait {
		return runTool(ctx, entry.Path, r.Tool, "clean")
	}
	return startTool(entry.Path, r.Tool, "clean")
}

func (r *Rust) Describe(entry model.Entry) string {
	return fmt.Sprintf("(cd %s && %s clean)", entry.Path, r.Tool)
}
