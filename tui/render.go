package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jackchuka/devsweep/internal/report"
)

func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top,
			m.renderHeader()+"\n"+m.renderHelp())
	}

	sections := []string{
		m.renderHeader(),
		m.renderTable(),
		m.renderFooter(),
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top,
		strings.Join(sections, "\n"))
}

func (m *Model) renderHeader() string {
	count, bytes := m.selectedTotal()
	title := styleTitle.Render("devsweep review")
	summary := fmt.Sprintf("%d of %d selected, %s", count, len(m.rows), styleSize.Render(report.Size(bytes)))

	mode := styleWarn.Render("LIVE: selected artifacts will be deleted")
	if m.dryRun {
		mode = styleDim.Render("dry run: nothing will be deleted")
	}
	return title + "  " + summary + "\n" + mode + "\n"
}

type columnWidths struct {
	check, kind, name, size, path int
}

func computeColumns(width int) columnWidths {
	c := columnWidths{check: 4, kind: 8, name: 24, size: 10}
	c.path = width - c.check - c.kind - c.name - c.size - 4
	if c.path < 10 {
		c.name += c.path - 10
		c.path = 10
	}
	if c.name < 8 {
		c.name = 8
	}
	return c
}

func (m *Model) renderTable() string {
	cols := computeColumns(m.width)

	hdr := padRight("", cols.check) +
		padRight("KIND", cols.kind) + " " +
		padRight("PROJECT", cols.name) + " " +
		padLeft("SIZE", cols.size) + " " +
		"ARTIFACT"
	lines := []string{styleTableHdr.Render(truncateWithEllipsis(hdr, m.width))}

	if len(m.rows) == 0 {
		lines = append(lines, styleDim.Render("  nothing to reclaim"))
		return strings.Join(lines, "\n")
	}

	end := m.scrollOffset + m.visibleRows()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.scrollOffset; i < end; i++ {
		lines = append(lines, m.renderRow(i, cols))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(i int, cols columnWidths) string {
	row := m.rows[i]
	f := row.Finding

	cursor := " "
	if i == m.cursor {
		cursor = iconCursor
	}
	check := styleDim.Render(iconUnchecked)
	if row.Selected {
		check = styleChecked.Render(iconChecked)
	}

	cells := cursor + " " + check + " " +
		styleKind.Render(padRight(truncateWithEllipsis(f.Cleaner, cols.kind), cols.kind)) + " " +
		styleName.Render(padRight(truncateWithEllipsis(f.DisplayName(), cols.name), cols.name)) + " " +
		styleSize.Render(padLeft(report.Size(f.Size), cols.size)) + " " +
		styleDim.Render(truncateWithEllipsis(f.Artifact, cols.path))

	if i == m.cursor {
		return styleSelected.Render(padRight(cells, m.width))
	}
	return cells
}

func (m *Model) renderFooter() string {
	sep := styleDim.Render(strings.Repeat("─", m.width))

	sortLabel := "size"
	if m.sortMode == SortName {
		sortLabel = "name"
	}

	parts := []string{
		styleKey.Render("space") + " toggle",
		styleKey.Render("a") + " all",
		styleKey.Render("s") + " sort:" + sortLabel,
		styleKey.Render("enter") + " reclaim",
		styleKey.Render("?") + " help",
		styleKey.Render("q") + " quit",
	}
	return sep + "\n " + truncateWithEllipsis(strings.Join(parts, "  "), m.width-2)
}

func (m *Model) renderHelp() string {
	content := m.keys.helpText()

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorCyan).
		Padding(1, 2).
		Width(50).
		Render(styleTitle.Render("HELP") + "\n\n" + content + "\n\n" + styleDim.Render("press any key to close"))

	availH := m.height - 4
	if availH < 10 {
		availH = 10
	}
	return lipgloss.Place(m.width, availH, lipgloss.Center, lipgloss.Center, box)
}
