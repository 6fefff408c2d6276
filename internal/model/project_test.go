package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDetection_Cleanable(t *testing.T) {
	tests := []struct {
		name     string
		d        Detection
		wantSize uint64
		wantOK   bool
	}{
		{"detected", DetectedSize(42), 42, true},
		{"detected empty", DetectedSize(0), 0, true},
		{"not applicable", NotDetected(), 0, false},
		{"inconclusive", Unknown(errors.New("permission denied")), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, ok := tt.d.Cleanable()
			if size != tt.wantSize || ok != tt.wantOK {
				t.Errorf("Cleanable() = (%d, %v), want (%d, %v)", size, ok, tt.wantSize, tt.wantOK)
			}
		})
	}
}

func TestDetectionStatus_String(t *testing.T) {
	if got := Detected.String(); got != "detected" {
		t.Errorf("Detected.String() = %q", got)
	}
	if got := Inconclusive.String(); got != "inconclusive" {
		t.Errorf("Inconclusive.String() = %q", got)
	}
	if got := NotApplicable.String(); got != "not applicable" {
		t.Errorf("NotApplicable.String() = %q", got)
	}
}

func TestEntryFromInfo(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "proj")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	mod := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	if err := os.Chtimes(dir, mod, mod); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}

	e := EntryFromInfo(dir, info)
	if !e.IsDir {
		t.Error("IsDir should be true")
	}
	if !e.ModTime.Equal(mod) {
		t.Errorf("ModTime = %v, want %v", e.ModTime, mod)
	}
	if e.Name() != "proj" {
		t.Errorf("Name() = %q, want proj", e.Name())
	}
	if got := e.Join("target", "debug"); got != filepath.Join(dir, "target", "debug") {
		t.Errorf("Join() = %q", got)
	}
}

func TestFinding_Failed(t *testing.T) {
	f := Finding{Entry: Entry{Path: "/home/user/Developer/app"}}
	if f.Failed() {
		t.Error("Failed() should be false without an error")
	}
	if f.DisplayName() != "app" {
		t.Errorf("DisplayName() = %q, want app", f.DisplayName())
	}
	f.Err = errors.New("boom")
	if !f.Failed() {
		t.Error("Failed() should be true with an error")
	}
}
