package registry

import "strings"

// FuzzyMatch returns true if query fuzzy-matches target. Matching is
// case-insensitive and succeeds on substring match or if the query
// characters appear as a subsequence in the target.
func FuzzyMatch(target, query string) bool {
	if query == "" {
		return true
	}
	t := strings.ToLower(target)
	q := strings.ToLower(query)
	if strings.Contains(t, q) {
		return true
	}
	qr := []rune(q)
	i := 0
	for _, ch := range t {
		if i < len(qr) && qr[i] == ch {
			i++
			if i >= len(qr) {
				return true
			}
		}
	}
	return false
}

// fuzzyMatchesWorkflow checks name, description, commands, and tags.
func fuzzyMatchesWorkflow(wf *Workflow, query string) bool {
	if FuzzyMatch(wf.Name, query) {
		return true
	}
	if wf.Description.Valid && FuzzyMatch(wf.Description.String, query) {
		return true
	}
	for _, c := range wf.Commands {
		if FuzzyMatch(c.Command, query) {
			return true
		}
	}
	for _, tag := range wf.Tags {
		if FuzzyMatch(tag, query) {
			return true
		}
	}
	return false
}

// FuzzySearchWorkflows loads full workflows and applies FuzzyMatch against
// name, description, commands, and tags in Go.
func (r *Repository) FuzzySearchWorkflows(query string) ([]Workflow, error) {
	summaries, err := r.ListWorkflows()
	if err != nil {
		return nil, err
	}
	var out []Workflow
	for _, s := range summaries {
		wf, err := r.GetWorkflowByName(s.Name)
		if err != nil {
			return nil, err
		}
		if wf == nil {
			continue
		}
		if fuzzyMatchesWorkflow(wf, query) {
			out = append(out, *wf)
		}
	}
	return out, nil
}
