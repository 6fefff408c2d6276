package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.rows))
	case key.Matches(msg, m.keys.HalfDown):
		m.moveCursor(m.visibleRows() / 2)
	case key.Matches(msg, m.keys.HalfUp):
		m.moveCursor(-m.visibleRows() / 2)

	case key.Matches(msg, m.keys.Toggle):
		if len(m.rows) > 0 {
			m.rows[m.cursor].Selected = !m.rows[m.cursor].Selected
		}
	case key.Matches(msg, m.keys.ToggleAll):
		all := true
		for _, r := range m.rows {
			if !r.Selected {
				all = false
				break
			}
		}
		for i := range m.rows {
			m.rows[i].Selected = !all
		}

	case key.Matches(msg, m.keys.Sort):
		var current string
		if len(m.rows) > 0 {
			current = m.rows[m.cursor].Finding.Artifact
		}
		if m.sortMode == SortSize {
			m.sortMode = SortName
		} else {
			m.sortMode = SortSize
		}
		m.sortRows()
		// Keep the cursor on the same finding.
		for i, r := range m.rows {
			if r.Finding.Artifact == current {
				m.cursor = i
				break
			}
		}
		m.ensureCursorVisible()
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// visibleRows is the table height left after header and footer.
func (m *Model) visibleRows() int {
	h := m.height - 6
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) ensureCursorVisible() {
	vis := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+vis {
		m.scrollOffset = m.cursor - vis + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
