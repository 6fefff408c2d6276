package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ANSI 256 color palette, shared with the review TUI.
var (
	colorGreen = lipgloss.Color("71")
	colorAmber = lipgloss.Color("179")
	colorRed   = lipgloss.Color("167")
	colorCyan  = lipgloss.Color("73")
	colorDim   = lipgloss.Color("242")
)

type styles struct {
	title   lipgloss.Style
	dim     lipgloss.Style
	kind    lipgloss.Style
	path    lipgloss.Style
	size    lipgloss.Style
	total   lipgloss.Style
	failure lipgloss.Style
}

// newStyles binds styles to w so color is only emitted when w can show it.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		kind:    r.NewStyle().Bold(true),
		path:    r.NewStyle(),
		size:    r.NewStyle().Foreground(colorAmber),
		total:   r.NewStyle().Bold(true).Foreground(colorGreen),
		failure: r.NewStyle().Foreground(colorRed),
	}
}

func commandColor(w io.Writer) *color.Color {
	c := color.New(color.FgHiBlue, color.Bold)
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		c.DisableColor()
	}
	return c
}

// Size formats bytes with binary units: 512 B, 2.0 KiB, 1.0 MiB.
func Size(n uint64) string {
	return humanize.IBytes(n)
}
