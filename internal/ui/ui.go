// Package ui prints human-facing run status to stderr. Answers themselves
// go to stdout from the commands; everything here is commentary.
//
// Colors follow the capabilities of the destination: a pipe or file gets
// plain text, and NO_COLOR is honored.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/aoc2023/internal/answers"
)

// ANSI palette indices, so the terminal theme picks the actual shade.
const (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorCyan   = lipgloss.Color("6")
)

type styles struct {
	day   lipgloss.Style
	muted lipgloss.Style
	ok    lipgloss.Style
	bad   lipgloss.Style
	warn  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		day:   r.NewStyle().Foreground(colorCyan),
		muted: r.NewStyle().Faint(true),
		ok:    r.NewStyle().Foreground(colorGreen),
		bad:   r.NewStyle().Foreground(colorRed).Bold(true),
		warn:  r.NewStyle().Foreground(colorYellow),
	}
}

// Printer writes styled status lines.
type Printer struct {
	w     io.Writer
	style styles
}

// New returns a printer writing to stderr.
func New() *Printer {
	return NewTo(os.Stderr)
}

// NewTo returns a printer writing to w instead of stderr.
func NewTo(w io.Writer) *Printer {
	return newPrinter(w, lipgloss.NewRenderer(w))
}

func newPrinter(w io.Writer, r *lipgloss.Renderer) *Printer {
	return &Printer{w: w, style: newStyles(r)}
}

// Solving announces which day and input are being solved.
func (p *Printer) Solving(day, path string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style.day.Render("◆ "+day), p.style.muted.Render(path))
}

// Verdicts reports how each answer compares with the known answers.
// Parts without a known answer are listed dimmed.
func (p *Printer) Verdicts(verdicts []answers.Verdict) {
	for _, v := range verdicts {
		part := fmt.Sprintf("part %d", v.Part)
		switch v.Status {
		case answers.StatusMatch:
			fmt.Fprintf(p.w, "%s matches known answer\n", p.style.ok.Render("✓ "+part))
		case answers.StatusMismatch:
			fmt.Fprintf(p.w, "%s got %d, known answer is %d\n", p.style.bad.Render("✗ "+part), v.Got, v.Want)
		default:
			fmt.Fprintln(p.w, p.style.muted.Render("· "+part+" has no known answer"))
		}
	}
}

// Recorded confirms that day's answers were stored at path.
func (p *Printer) Recorded(day, path string) {
	fmt.Fprintf(p.w, "%s %s answers in %s\n", p.style.ok.Render("✓ recorded"), day, path)
}

// Watching tells the user the input is being watched.
func (p *Printer) Watching(path string) {
	fmt.Fprintln(p.w, p.style.muted.Render("watching "+path+" for changes (ctrl-c to stop)"))
}

// InputChanged announces a rerun after an edit.
func (p *Printer) InputChanged(path string) {
	fmt.Fprintf(p.w, "\n%s\n", p.style.warn.Render("↻ "+path+" changed"))
}

// InputRemoved reports that the watched input disappeared.
func (p *Printer) InputRemoved(path string) {
	fmt.Fprintf(p.w, "\n%s %s\n", p.style.warn.Render("⚠ "+path+" removed"), p.style.muted.Render("waiting for it to come back"))
}

// Error prints msg with an error prefix.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style.bad.Render("error:"), msg)
}
