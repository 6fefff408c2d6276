package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jackchuka/devsweep/internal/model"
)

func sampleFindings() []model.Finding {
	return []model.Finding{
		{Cleaner: "nodeJS", Entry: model.Entry{Path: "/ws/small"}, Artifact: "/ws/small/node_modules", Size: 100},
		{Cleaner: "Rust", Entry: model.Entry{Path: "/ws/big"}, Artifact: "/ws/big/target", Size: 5000},
		{Cleaner: "Rust", Entry: model.Entry{Path: "/ws/alpha"}, Artifact: "/ws/alpha/target", Size: 300},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestNewModel_SortsBySizeAndSelectsAll(t *testing.T) {
	m := NewModel(sampleFindings(), true)

	got := m.Selected()
	if len(got) != 3 {
		t.Fatalf("Selected() = %d, want 3", len(got))
	}
	want := []string{"big", "alpha", "small"}
	for i, w := range want {
		if got[i].DisplayName() != w {
			t.Errorf("row %d = %q, want %q", i, got[i].DisplayName(), w)
		}
	}
}

func TestModel_ToggleAndConfirm(t *testing.T) {
	m := NewModel(sampleFindings(), false)

	// Deselect the second row (alpha).
	send(m, tea.KeyMsg{Type: tea.KeyDown}, runes("x"))
	cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
	if !m.Confirmed() {
		t.Error("Confirmed() should be true after enter")
	}

	sel := m.Selected()
	if len(sel) != 2 {
		t.Fatalf("Selected() = %d, want 2", len(sel))
	}
	for _, f := range sel {
		if f.DisplayName() == "alpha" {
			t.Error("alpha was deselected")
		}
	}
}

func TestModel_ToggleAll(t *testing.T) {
	m := NewModel(sampleFindings(), true)

	send(m, runes("a"))
	if n := len(m.Selected()); n != 0 {
		t.Errorf("after first toggle-all Selected() = %d, want 0", n)
	}
	send(m, runes("a"))
	if n := len(m.Selected()); n != 3 {
		t.Errorf("after second toggle-all Selected() = %d, want 3", n)
	}
}

func TestModel_QuitDoesNotConfirm(t *testing.T) {
	m := NewModel(sampleFindings(), true)
	if cmd := send(m, runes("q")); cmd == nil {
		t.Fatal("q should quit")
	}
	if m.Confirmed() {
		t.Error("quitting must not confirm")
	}
}

func TestModel_SortKeepsCursor(t *testing.T) {
	m := NewModel(sampleFindings(), true)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 20})

	// Cursor on "big" (largest), then switch to name order: alpha, big, small.
	send(m, runes("s"))
	if m.sortMode != SortName {
		t.Fatalf("sortMode = %v, want SortName", m.sortMode)
	}
	if got := m.rows[m.cursor].Finding.DisplayName(); got != "big" {
		t.Errorf("cursor on %q, want big", got)
	}
	if got := m.rows[0].Finding.DisplayName(); got != "alpha" {
		t.Errorf("first row %q, want alpha", got)
	}
}

func TestModel_CursorBounds(t *testing.T) {
	m := NewModel(sampleFindings(), true)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 20})

	send(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	send(m, runes("G"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	send(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel(sampleFindings(), true)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before size = %q", got)
	}

	send(m, tea.WindowSizeMsg{Width: 120, Height: 20})
	view := m.View()
	for _, want := range []string{"devsweep review", "3 of 3 selected", "dry run", "big", "/ws/small/node_modules"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_EmptyFindings(t *testing.T) {
	m := NewModel(nil, false)
	send(m, tea.WindowSizeMsg{Width: 80, Height: 20}, runes("x"), tea.KeyMsg{Type: tea.KeyDown})

	if !strings.Contains(m.View(), "nothing to reclaim") {
		t.Error("empty view should say there is nothing to reclaim")
	}
	if len(m.Selected()) != 0 {
		t.Error("Selected() should be empty")
	}
}
