package registry

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cmdkit/cmdkit/internal/nameutil"
)

// ErrExists is returned when saving a workflow whose name is already taken.
var ErrExists = errors.New("workflow already exists")

// ErrNoCommands is returned when saving a workflow with no usable commands.
var ErrNoCommands = errors.New("at least one command is required")

// Repository provides CRUD operations for workflows, commands and tags.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWorkflow validates and inserts a new workflow with its command
// templates, returning the new ID. The name must be unused and at least one
// non-blank command is required. Nothing is written when validation fails.
func (r *Repository) CreateWorkflow(name string, description, authorName, authorEmail *string, commands []string) (int64, error) {
	name = strings.TrimSpace(name)
	if err := nameutil.ValidateName(name); err != nil {
		return 0, err
	}
	filtered := make([]string, 0, len(commands))
	for _, c := range commands {
		if strings.TrimSpace(c) == "" {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		return 0, ErrNoCommands
	}
	return r.createWorkflowTx(name, description, authorName, authorEmail, filtered)
}

func (r *Repository) createWorkflowTx(name string, description, authorName, authorEmail *string, commands []string) (int64, error) {
	// The duplicate check happens inside the DB engine so concurrent saves
	// across processes cannot race past it.
	trx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = trx.Rollback() }()

	res, err := trx.Exec(`INSERT INTO workflows (name, description, author_name, author_email, created_at)
			SELECT ?, ?, ?, ?, datetime('now')
			WHERE NOT EXISTS(SELECT 1 FROM workflows WHERE TRIM(name) = ?)`, name, description, authorName, authorEmail, name)
	if err != nil {
		return 0, fmt.Errorf("insert workflow: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, fmt.Errorf("workflow %q: %w", name, ErrExists)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for i, c := range commands {
		if _, err := trx.Exec("INSERT INTO commands (workflow_id, position, command) VALUES (?, ?, ?)", id, i+1, c); err != nil {
			return 0, fmt.Errorf("insert command: %w", err)
		}
	}
	if err := trx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetWorkflowByName retrieves a workflow with its commands and tags by name.
// A missing workflow is reported as (nil, nil).
func (r *Repository) GetWorkflowByName(name string) (*Workflow, error) {
	row := r.db.QueryRow("SELECT id, name, description, author_name, author_email, created_at, last_run FROM workflows WHERE name = ?", name)
	var wf Workflow
	if err := row.Scan(&wf.ID, &wf.Name, &wf.Description, &wf.AuthorName, &wf.AuthorEmail, &wf.CreatedAt, &wf.LastRun); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.Query("SELECT id, workflow_id, position, command FROM commands WHERE workflow_id = ? ORDER BY position ASC", wf.ID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var c Command
		if err := rows.Scan(&c.ID, &c.WorkflowID, &c.Position, &c.Command); err != nil {
			return nil, err
		}
		wf.Commands = append(wf.Commands, c)
	}

	if err := r.attachTags(&wf); err != nil {
		return nil, err
	}
	return &wf, nil
}

// ListWorkflows returns all workflows with their tags (without commands).
func (r *Repository) ListWorkflows() ([]Workflow, error) {
	return r.listWorkflows("SELECT id, name, description, author_name, author_email, created_at, last_run FROM workflows ORDER BY name ASC")
}

// ListWorkflowsByTag returns all workflows carrying the given tag.
func (r *Repository) ListWorkflowsByTag(tag string) ([]Workflow, error) {
	return r.listWorkflows(`
		SELECT w.id, w.name, w.description, w.author_name, w.author_email, w.created_at, w.last_run
		FROM workflows w
		JOIN workflow_tags wt ON w.id = wt.workflow_id
		JOIN tags t ON t.id = wt.tag_id
		WHERE t.name = ?
		ORDER BY w.name ASC
	`, tag)
}

// SearchWorkflows searches workflows by name, description, or command content.
func (r *Repository) SearchWorkflows(query string) ([]Workflow, error) {
	pattern := "%" + query + "%"
	return r.listWorkflows(`
		SELECT DISTINCT w.id, w.name, w.description, w.author_name, w.author_email, w.created_at, w.last_run
		FROM workflows w
		LEFT JOIN commands c ON c.workflow_id = w.id
		WHERE w.name LIKE ? OR w.description LIKE ? OR c.command LIKE ?
		ORDER BY w.name ASC
	`, pattern, pattern, pattern)
}

func (r *Repository) listWorkflows(query string, args ...interface{}) ([]Workflow, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Workflow
	for rows.Next() {
		var wf Workflow
		if err := rows.Scan(&wf.ID, &wf.Name, &wf.Description, &wf.AuthorName, &wf.AuthorEmail, &wf.CreatedAt, &wf.LastRun); err != nil {
			return nil, err
		}
		out = append(out, wf)
	}
	for i := range out {
		if err := r.attachTags(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// attachTags loads tags for a workflow, sorted for stable display.
func (r *Repository) attachTags(wf *Workflow) error {
	rows, err := r.db.Query("SELECT t.name FROM tags t JOIN workflow_tags wt ON t.id = wt.tag_id WHERE wt.workflow_id = ?", wf.ID)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		wf.Tags = append(wf.Tags, name)
	}
	sort.Strings(wf.Tags)
	return nil
}

// AddTag adds a tag (creating it if necessary) and associates it with the
// workflow. Adding a tag the workflow already carries is a no-op.
func (r *Repository) AddTag(workflowID int64, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return errors.New("tag cannot be empty")
	}
	trx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	if _, err := trx.Exec("INSERT OR IGNORE INTO tags (name) VALUES (?)", tag); err != nil {
		return err
	}
	var tagID int64
	if err := trx.QueryRow("SELECT id FROM tags WHERE name = ?", tag).Scan(&tagID); err != nil {
		return err
	}
	if _, err := trx.Exec("INSERT OR IGNORE INTO workflow_tags (workflow_id, tag_id) VALUES (?, ?)", workflowID, tagID); err != nil {
		return err
	}
	return trx.Commit()
}

// RemoveTag removes an association between a tag and a workflow.
func (r *Repository) RemoveTag(workflowID int64, tag string) error {
	var tagID int64
	if err := r.db.QueryRow("SELECT id FROM tags WHERE name = ?", tag).Scan(&tagID); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	_, err := r.db.Exec("DELETE FROM workflow_tags WHERE workflow_id = ? AND tag_id = ?", workflowID, tagID)
	return err
}

// ListTags returns all tag names associated with a workflow, sorted.
func (r *Repository) ListTags(workflowID int64) ([]string, error) {
	rows, err := r.db.Query("SELECT t.name FROM tags t JOIN workflow_tags wt ON t.id = wt.tag_id WHERE wt.workflow_id = ?", workflowID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// TouchLastRun records that the workflow was just executed.
func (r *Repository) TouchLastRun(workflowID int64) error {
	_, err := r.db.Exec("UPDATE workflows SET last_run = datetime('now') WHERE id = ?", workflowID)
	return err
}

// DeleteWorkflow removes a workflow and its commands by name. The CLI never
// deletes workflows; this exists so tests can reset state.
func (r *Repository) DeleteWorkflow(name string) error {
	trx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	var id int64
	if err := trx.QueryRow("SELECT id FROM workflows WHERE name = ?", name).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	if _, err := trx.Exec("DELETE FROM commands WHERE workflow_id = ?", id); err != nil {
		return err
	}
	if _, err := trx.Exec("DELETE FROM workflow_tags WHERE workflow_id = ?", id); err != nil {
		return err
	}
	if _, err := trx.Exec("DELETE FROM workflows WHERE id = ?", id); err != nil {
		return err
	}
	return trx.Commit()
}
