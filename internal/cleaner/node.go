package cleaner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jackchuka/devsweep/internal/model"
)

// Node removes node_modules outright; npm has no clean subcommand.
type Node struct {
	markerKind
}

func NewNode() *Node {
	return &Node{
		markerKind: markerKind{
			name:     "nodeJS",
			marker:   "package-lock.json",
			artifact: "node_modules",
		},
	}
}

func (n *Node) Clean(_ context.Context, entry model.Entry) error {
	target := n.Artifact(entry)
	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", target, ErrArtifactMissing)
		}
		return err
	}

	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("remove %s: %w", target, err)
	}
	return nil
}

func (n *Node) Describe(entry model.Entry) string {
	return "rm -rf " + n.Artifact(entry)
}
