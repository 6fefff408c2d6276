package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jackchuka/devsweep/internal/model"
)

type SortMode int

const (
	SortSize SortMode = iota
	SortName
)

type TableRow struct {
	Finding  *model.Finding
	Selected bool
}

// Model lets the user choose which findings to reclaim.
type Model struct {
	rows   []TableRow
	cursor int
	dryRun bool

	width, height int
	scrollOffset  int

	sortMode  SortMode
	showHelp  bool
	confirmed bool

	keys keyMap
}

// NewModel starts with every finding selected, largest first.
func NewModel(findings []model.Finding, dryRun bool) *Model {
	rows := make([]TableRow, len(findings))
	for i := range findings {
		f := findings[i]
		rows[i] = TableRow{Finding: &f, Selected: true}
	}

	m := &Model{
		rows:     rows,
		dryRun:   dryRun,
		sortMode: SortSize,
		keys:     newKeyMap(),
	}
	m.sortRows()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) sortRows() {
	switch m.sortMode {
	case SortName:
		sort.SliceStable(m.rows, func(i, j int) bool {
			return m.rows[i].Finding.DisplayName() < m.rows[j].Finding.DisplayName()
		})
	default:
		sort.SliceStable(m.rows, func(i, j int) bool {
			if m.rows[i].Finding.Size != m.rows[j].Finding.Size {
				return m.rows[i].Finding.Size > m.rows[j].Finding.Size
			}
			return m.rows[i].Finding.DisplayName() < m.rows[j].Finding.DisplayName()
		})
	}
}

// Confirmed reports whether the user accepted the selection.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Selected returns the findings currently ticked, in display order.
func (m *Model) Selected() []model.Finding {
	var out []model.Finding
	for _, r := range m.rows {
		if r.Selected {
			out = append(out, *r.Finding)
		}
	}
	return out
}

func (m *Model) selectedTotal() (count int, bytes uint64) {
	for _, r := range m.rows {
		if r.Selected {
			count++
			bytes += r.Finding.Size
		}
	}
	return count, bytes
}

// Run shows the review screen. It returns the chosen findings, or nil when
// the user quits without confirming.
func Run(findings []model.Finding, dryRun bool) ([]model.Finding, error) {
	m := NewModel(findings, dryRun)
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return nil, err
	}

	final, ok := result.(*Model)
	if !ok || !final.Confirmed() {
		return nil, nil
	}
	return final.Selected(), nil
}
