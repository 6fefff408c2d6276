package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ANSI 256 color palette
var (
	colorGreen = lipgloss.Color("71")
	colorAmber = lipgloss.Color("179")
	colorRed   = lipgloss.Color("167")
	colorCyan  = lipgloss.Color("73")

	colorFg  = lipgloss.Color("253")
	colorDim = lipgloss.Color("242")

	colorSelBg    = lipgloss.Color("238")
	colorSelFg    = lipgloss.Color("255")
	colorTableHdr = lipgloss.Color("245")
)

const (
	iconChecked   = "●"
	iconUnchecked = "○"
	iconCursor    = "▸"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleName     = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	styleKind     = lipgloss.NewStyle().Foreground(colorCyan)
	styleSize     = lipgloss.NewStyle().Foreground(colorAmber)
	styleChecked  = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarn     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleTableHdr = lipgloss.NewStyle().Foreground(colorTableHdr).Bold(true)
	styleSelected = lipgloss.NewStyle().Background(colorSelBg).Foreground(colorSelFg)
	styleKey      = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

func truncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
