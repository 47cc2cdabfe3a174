// Package ui renders cmdkit console output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cmdkit/cmdkit/internal/engine"
	"github.com/cmdkit/cmdkit/internal/registry"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emphStyle    = lipgloss.NewStyle().Bold(true)
)

// Successf writes a success-styled line.
func Successf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, a...)))
}

// Errorf writes an error-styled line.
func Errorf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(format, a...)))
}

// Infof writes a dim informational line.
func Infof(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf(format, a...)))
}

// RenderDryRun writes the preview for a dry run.
func RenderDryRun(w io.Writer, name string, res *engine.Result) {
	fmt.Fprintf(w, "dry run for workflow '%s' (mode %s):\n", name, res.Mode)
	if op := res.Mode.Operator(); op != "" {
		for _, c := range res.Commands {
			fmt.Fprintf(w, "  would run: %s\n", c.Command)
		}
		Infof(w, "  (single shell invocation, chained with %s)", op)
		return
	}
	for _, c := range res.Commands {
		fmt.Fprintf(w, "  [%d] %s\n", c.Index, c.Command)
	}
}

// RenderVerdict writes the final outcome of a run.
func RenderVerdict(w io.Writer, name string, res *engine.Result) {
	if res.Success() {
		Successf(w, "workflow '%s' completed successfully", name)
		return
	}
	if res.Mode == engine.RunAll {
		Errorf(w, "workflow '%s' finished with %d failed command(s):", name, len(res.Failures))
		for _, f := range res.Failures {
			fmt.Fprintf(w, "  [%d] %s (exit code %d)\n", f.Index, f.Command, f.ExitCode)
		}
		return
	}
	Errorf(w, "workflow '%s' failed (exit code %d)", name, res.ExitCode)
}

// WorkflowSummary returns a one-line listing entry: the name plus its tags.
func WorkflowSummary(wf *registry.Workflow) string {
	s := emphStyle.Render(wf.Name)
	if len(wf.Tags) > 0 {
		s += " " + infoStyle.Render("["+strings.Join(wf.Tags, ", ")+"]")
	}
	return s
}

// WorkflowDetail returns a multi-line description of a workflow: metadata,
// tags, commands in order, and the placeholders they reference.
func WorkflowDetail(wf *registry.Workflow) string {
	var b strings.Builder
	b.WriteString(emphStyle.Render(wf.Name) + "\n")
	if wf.Description.Valid && wf.Description.String != "" {
		b.WriteString(wf.Description.String + "\n")
	}
	if wf.AuthorName.Valid && wf.AuthorName.String != "" {
		author := wf.AuthorName.String
		if wf.AuthorEmail.Valid && wf.AuthorEmail.String != "" {
			author += " <" + wf.AuthorEmail.String + ">"
		}
		b.WriteString(infoStyle.Render("author: "+author) + "\n")
	}
	b.WriteString(infoStyle.Render("created: "+wf.CreatedAt) + "\n")
	if wf.LastRun.Valid && wf.LastRun.String != "" {
		b.WriteString(infoStyle.Render("last run: "+wf.LastRun.String) + "\n")
	}
	if len(wf.Tags) > 0 {
		b.WriteString(infoStyle.Render("tags: "+strings.Join(wf.Tags, ", ")) + "\n")
	}
	b.WriteString("\ncommands:\n")
	for _, c := range wf.Commands {
		b.WriteString(fmt.Sprintf("  [%d] %s\n", c.Position, c.Command))
	}
	if ph := registry.FindPlaceholders(wf.CommandStrings()); len(ph) > 0 {
		b.WriteString(infoStyle.Render("placeholders: "+strings.Join(ph, ", ")) + "\n")
	}
	return b.String()
}
