package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// placeholderRe matches {{name}} markers. Names are word characters only;
// whitespace inside the braces is tolerated and normalized away.
var placeholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// ErrMissingValue reports a placeholder that survived to rendering without
// a value. The resolver fills every extracted placeholder first, so hitting
// this through the CLI is a bug, not a user error.
var ErrMissingValue = errors.New("missing placeholder value")

// FindPlaceholders returns the distinct placeholder names referenced by the
// given command templates, sorted lexicographically. The order of the input
// commands does not affect the result.
func FindPlaceholders(commands []string) []string {
	seen := map[string]bool{}
	for _, cmd := range commands {
		for _, m := range placeholderRe.FindAllStringSubmatch(cmd, -1) {
			seen[m[1]] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// RenderCommands substitutes values into every template and returns the
// same-length slice of rendered commands. A placeholder with no entry in
// values fails with ErrMissingValue listing the unresolved names.
func RenderCommands(commands []string, values map[string]string) ([]string, error) {
	var missing []string
	rendered := make([]string, 0, len(commands))
	for _, cmd := range commands {
		rendered = append(rendered, placeholderRe.ReplaceAllStringFunc(cmd, func(match string) string {
			name := placeholderRe.FindStringSubmatch(match)[1]
			if v, ok := values[name]; ok {
				return v
			}
			missing = append(missing, name)
			return match
		}))
	}
	if len(missing) > 0 {
		uniq := map[string]bool{}
		keys := []string{}
		for _, m := range missing {
			if !uniq[m] {
				uniq[m] = true
				keys = append(keys, m)
			}
		}
		sort.Strings(keys)
		return rendered, fmt.Errorf("%w: %s", ErrMissingValue, strings.Join(keys, ", "))
	}
	return rendered, nil
}
