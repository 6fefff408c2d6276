package cleaner

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackchuka/devsweep/internal/model"
)

func TestDefault_Order(t *testing.T) {
	got := Names(Default(Options{}))
	want := []string{"Rust", "nodeJS"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSelect(t *testing.T) {
	all := Default(Options{})

	tests := []struct {
		name    string
		names   []string
		want    []string
		wantErr bool
	}{
		{"empty keeps all", nil, []string{"Rust", "nodeJS"}, false},
		{"case insensitive", []string{"NODEJS"}, []string{"nodeJS"}, false},
		{"order follows registry", []string{"nodejs", "rust"}, []string{"Rust", "nodeJS"}, false},
		{"unknown", []string{"python"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(all, tt.names)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCleaner) {
					t.Fatalf("Select() error = %v, want ErrUnknownCleaner", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if strings.Join(Names(got), ",") != strings.Join(tt.want, ",") {
				t.Errorf("Select() = %v, want %v", Names(got), tt.want)
			}
		})
	}
}

func TestNode_Clean(t *testing.T) {
	entry := mkProject(t, map[string]int{
		"package-lock.json":       10,
		"index.js":                10,
		"node_modules/a/index.js": 100,
	})

	n := NewNode()
	if err := n.Clean(context.Background(), entry); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(entry.Path, "node_modules")); !os.IsNotExist(err) {
		t.Errorf("node_modules should be gone, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(entry.Path, "index.js")); err != nil {
		t.Errorf("project files must survive: %v", err)
	}
	if _, ok := n.Cleanable(entry); ok {
		t.Error("entry should no longer be cleanable")
	}
}

func TestNode_CleanMissingArtifact(t *testing.T) {
	entry := mkProject(t, map[string]int{"package-lock.json": 10})

	err := NewNode().Clean(context.Background(), entry)
	if !errors.Is(err, ErrArtifactMissing) {
		t.Errorf("Clean() error = %v, want ErrArtifactMissing", err)
	}
}

func TestRust_CleanLaunchFailure(t *testing.T) {
	entry := mkProject(t, map[string]int{"Cargo.toml": 1, "target/a": 1})

	r := NewRust(Options{CargoPath: "devsweep-no-such-cargo"})
	if err := r.Clean(context.Background(), entry); err == nil {
		t.Error("Clean() should fail when the tool cannot start")
	}
}

func TestRust_CleanFireAndForget(t *testing.T) {
	tool, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false not found in PATH")
	}
	entry := mkProject(t, map[string]int{"Cargo.toml": 1, "target/a": 1})

	// The tool exits non-zero, which goes unnoticed without Wait.
	r := NewRust(Options{CargoPath: tool})
	if err := r.Clean(context.Background(), entry); err != nil {
		t.Errorf("Clean() error = %v, want nil", err)
	}
}

func TestRust_CleanWait(t *testing.T) {
	falseBin, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false not found in PATH")
	}
	trueBin, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not found in PATH")
	}
	entry := mkProject(t, map[string]int{"Cargo.toml": 1, "target/a": 1})

	ok := NewRust(Options{CargoPath: trueBin, Wait: true})
	if err := ok.Clean(context.Background(), entry); err != nil {
		t.Errorf("Clean() with a succeeding tool error = %v", err)
	}

	failing := NewRust(Options{CargoPath: falseBin, Wait: true})
	if err := failing.Clean(context.Background(), entry); err == nil {
		t.Error("Clean() should report a non-zero exit in wait mode")
	}
}

func TestRust_CleanRunsInProjectDir(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not found in PATH")
	}
	entry := mkProject(t, map[string]int{"Cargo.toml": 1, "target/a": 1})

	// A fake cargo that removes target relative to its working directory.
	fake := filepath.Join(t.TempDir(), "cargo")
	script := "#!" + sh + "\n[ \"$1\" = clean ] && rm -rf target\n"
	if err := os.WriteFile(fake, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	r := NewRust(Options{CargoPath: fake, Wait: true})
	if err := r.Clean(context.Background(), entry); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(entry.Path, "target")); !os.IsNotExist(err) {
		t.Errorf("target should be removed, stat err = %v", err)
	}
}

func TestDescribe(t *testing.T) {
	entry := model.Entry{Path: "/home/user/Developer/app"}

	if got := NewRust(Options{}).Describe(entry); got != "(cd /home/user/Developer/app && cargo clean)" {
		t.Errorf("Rust.Describe() = %q", got)
	}
	if got := NewNode().Describe(entry); got != "rm -rf "+filepath.Join("/home/user/Developer/app", "node_modules") {
		t.Errorf("Node.Describe() = %q", got)
	}
}
