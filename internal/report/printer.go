package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jackchuka/devsweep/internal/cleaner"
	"github.com/jackchuka/devsweep/internal/diskusage"
	"github.com/jackchuka/devsweep/internal/model"
	"github.com/jackchuka/devsweep/internal/scanner"
)

// Printer writes the human-readable scan report.
type Printer struct {
	w     io.Writer
	st    styles
	cmd   *color.Color
	quiet bool
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:   w,
		st:  newStyles(w),
		cmd: commandColor(w),
	}
}

// SetQuiet suppresses per-finding lines; the summary still prints.
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

func (p *Printer) Header(root string, dryRun bool) {
	line := "Working on " + p.st.title.Render(root)
	if dryRun {
		line += " " + p.st.dim.Render("(dry run)")
	}
	fmt.Fprintln(p.w, line)
}

func (p *Printer) Finding(f model.Finding) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, "Found a %s project in %s, can save %s\n",
		p.st.kind.Render(f.Cleaner),
		p.st.path.Render(f.Entry.Path),
		p.st.size.Render(Size(f.Size)))
}

// Command echoes the shell equivalent of a cleanup about to run.
func (p *Printer) Command(line string) {
	if p.quiet {
		return
	}
	p.cmd.Fprintf(p.w, "$ %s\n", line)
}

func (p *Printer) Cleaned(f model.Finding) {
	if f.Err == nil {
		return
	}
	fmt.Fprintln(p.w, p.st.failure.Render(fmt.Sprintf("  failed to clean %s: %v", f.Entry.Path, f.Err)))
}

func (p *Printer) Summary(res *scanner.Result) {
	label := "Total space saved:"
	if res.DryRun {
		label = "Total space to be saved:"
	}
	fmt.Fprintf(p.w, "%s %s\n", label, p.st.total.Render(Size(res.Total())))

	if failed := res.Failures(); len(failed) > 0 {
		fmt.Fprintln(p.w, p.st.failure.Render(fmt.Sprintf("%d cleanup(s) failed", len(failed))))
	}
	if n := len(res.Inconclusive); n > 0 {
		fmt.Fprintln(p.w, p.st.dim.Render(fmt.Sprintf("%d check(s) could not be completed (run with --verbose for details)", n)))
	}
}

func (p *Printer) FreeSpace(u diskusage.Usage) {
	fmt.Fprintln(p.w, p.st.dim.Render(fmt.Sprintf("Free space on %s: %s of %s", u.Path, Size(u.Free), Size(u.Total))))
}

// Callbacks wires the printer into a scan. The cleaners are used to echo
// each cleanup command before it runs.
func (p *Printer) Callbacks(cleaners []cleaner.Cleaner) scanner.Callbacks {
	byName := make(map[string]cleaner.Cleaner, len(cleaners))
	for _, c := range cleaners {
		byName[c.Name()] = c
	}

	return scanner.Callbacks{
		OnFinding: p.Finding,
		OnCleanStart: func(f model.Finding) {
			if c, ok := byName[f.Cleaner]; ok {
				p.Command(c.Describe(f.Entry))
			}
		},
		OnCleaned: p.Cleaned,
	}
}
