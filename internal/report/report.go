// Package report prints generation progress for humans: a header per step,
// one marker line per file, warnings, and the final completion line.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// Reporter writes progress lines to an underlying writer.
type Reporter struct {
	w io.Writer
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Step announces the start of a generation step.
func (r *Reporter) Step(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Created reports a file or directory that was written for the first time.
func (r *Reporter) Created(path string) {
	fmt.Fprintf(r.w, "  %s Created %s\n", okStyle.Render("[ OK ]"), path)
}

// Updated reports an existing file that was rewritten.
func (r *Reporter) Updated(path string) {
	fmt.Fprintf(r.w, "  %s Updated %s\n", okStyle.Render("[ OK ]"), path)
}

// Skipped reports a path left untouched because it already exists.
func (r *Reporter) Skipped(path string) {
	fmt.Fprintf(r.w, "  %s %s already exists\n", skipStyle.Render("[SKIP]"), path)
}

// Warnings prints advisory messages collected during the run.
func (r *Reporter) Warnings(msgs []string) {
	if len(msgs) == 0 {
		return
	}
	fmt.Fprintln(r.w, "\nWarnings:")
	for _, m := range msgs {
		fmt.Fprintf(r.w, "  %s %s\n", warnStyle.Render("-"), m)
	}
}

// Done prints the completion line.
func (r *Reporter) Done() {
	fmt.Fprintln(r.w, "DONE.")
}
