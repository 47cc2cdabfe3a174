// Package security screens commands for obviously destructive patterns.
package security

import (
	"errors"
	"regexp"
	"strings"
)

var destructivePatterns = []*regexp.Regexp{
	// destructive filesystem ops
	regexp.MustCompile(`(?i)\brm\s+-rf\s+/?$`),
	regexp.MustCompile(`(?i)\brm\s+-rf\s+/`),
	regexp.MustCompile(`(?i)\bmkfs\b`),
	regexp.MustCompile(`(?i)\bdd\s+if=`),
	// fork bombs (e.g. :(){ :|:& };:)
	regexp.MustCompile(`:\(\)\s*\{`),
	// package managers removing everything
	regexp.MustCompile(`(?i)\bapt-get\s+remove\s+`),
	regexp.MustCompile(`(?i)\byum\s+remove\s+`),
	// wipe disk
	regexp.MustCompile(`(?i)\bwipefs\b`),
}

// Check returns nil if the command is allowed to run, or an error
// describing why it's blocked. Checking is conservative and not
// exhaustive; it is refusal, not sandboxing.
func Check(command string) error {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return errors.New("empty command")
	}
	for _, re := range destructivePatterns {
		if re.MatchString(cmd) {
			return errors.New("command appears destructive or unsafe")
		}
	}
	return nil
}
