// Package registry provides workflow storage and lookup.
package registry

import "database/sql"

// Workflow is a named, ordered sequence of shell command templates.
type Workflow struct {
	ID          int64
	Name        string
	Description sql.NullString
	AuthorName  sql.NullString
	AuthorEmail sql.NullString
	CreatedAt   string
	LastRun     sql.NullString
	Commands    []Command
	Tags        []string
}

// Command is a single command template within a Workflow.
type Command struct {
	ID         int64
	WorkflowID int64
	Position   int
	Command    string
}

// CommandStrings returns the workflow's command templates in position order.
func (w *Workflow) CommandStrings() []string {
	out := make([]string, 0, len(w.Commands))
	for _, c := range w.Commands {
		out = append(out, c.Command)
	}
	return out
}
