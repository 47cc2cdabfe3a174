// Package resolver turns trailing run arguments and interactive input into
// a complete placeholder value mapping.
package resolver

import (
	"sort"
	"strings"
)

// PromptFunc asks the user for the value of a single placeholder and
// returns the entered line.
type PromptFunc func(name string) string

// ParseArgs scans raw trailing tokens for --key value pairs, left to right.
// A token starting with "--" introduces a key; the next token is its value
// unless it is itself a key, in which case the bare key contributes
// nothing. Non-key tokens are skipped. A key appearing twice keeps its
// later value. Keys that match no placeholder are tolerated; callers
// downstream simply never look them up.
//
// This is deliberately a best-effort scanner, not a strict flag parser:
// workflow invocations must stay flexible in the face of unknown keys and
// missing values.
func ParseArgs(tokens []string) map[string]string {
	values := map[string]string{}
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		if !strings.HasPrefix(t, "--") {
			i++
			continue
		}
		key := strings.TrimPrefix(t, "--")
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
			values[key] = tokens[i+1]
			i += 2
			continue
		}
		i++
	}
	return values
}

// Resolve produces a value for every placeholder. Values supplied through
// the trailing tokens win; anything left unresolved is prompted for, in
// sorted name order so prompting is deterministic. A prompt is never issued
// for an already-resolved name.
func Resolve(placeholders []string, tokens []string, prompt PromptFunc) map[string]string {
	values := ParseArgs(tokens)
	names := append([]string(nil), placeholders...)
	sort.Strings(names)
	for _, name := range names {
		if _, ok := values[name]; ok {
			continue
		}
		values[name] = prompt(name)
	}
	return values
}
