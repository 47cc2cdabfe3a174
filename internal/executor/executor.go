// Package executor runs shell command lines and reports their exit codes.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Runner executes a single shell command line and returns its exit code.
// Implementations block until the process has fully completed.
type Runner interface {
	Run(ctx context.Context, command string, stdout, stderr io.Writer) (int, error)
}

// Executor is the real Runner. The command string is handed whole to a
// shell, never tokenized here, so pipes, redirects and globs keep their
// usual meaning.
type Executor struct {
	Shell string // optional override, e.g. "bash -lc"
}

// New returns an Executor honoring the CMDKIT_SHELL override.
func New() *Executor {
	return &Executor{Shell: os.Getenv("CMDKIT_SHELL")}
}

// Run executes command through the shell and waits for completion. A
// non-zero exit status is not an error: it is reported through the exit
// code. The returned error covers environmental failures only (shell
// missing, override unparseable).
func (e *Executor) Run(ctx context.Context, command string, stdout, stderr io.Writer) (int, error) {
	command = sanitizeCommand(command)
	if strings.TrimSpace(command) == "" {
		return 0, errors.New("empty command")
	}
	shell, args, err := shellInvocation(command, e.Shell)
	if err != nil {
		return 0, err
	}

	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("run %s: %w", shell, err)
	}
	return 0, nil
}

// shellInvocation returns the shell executable and arguments for the
// platform. An override like "bash -lc" is split into tokens respecting
// quotes; the command becomes its final argument.
func shellInvocation(command, override string) (string, []string, error) {
	if override != "" {
		toks, err := shellquote.Split(override)
		if err != nil {
			return "", nil, fmt.Errorf("parse shell override %q: %w", override, err)
		}
		if len(toks) == 0 {
			return "", nil, errors.New("empty shell override")
		}
		return toks[0], append(toks[1:], command), nil
	}
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}, nil
	}
	return "sh", []string{"-c", command}, nil
}

// sanitizeCommand normalizes unicode characters that editors commonly
// insert (smart quotes, NBSP, zero-width spaces) and strips NULs and other
// invisible marks before the command reaches the shell.
func sanitizeCommand(s string) string {
	r := strings.NewReplacer(
		"‘", "'", // left single quote
		"’", "'", // right single quote
		"“", "\"", // left double quote
		"”", "\"", // right double quote
		" ", " ", // NO-BREAK SPACE
		"​", "", // zero width space
		"‎", "", // left-to-right mark
		"‏", "", // right-to-left mark
	)
	rp := r.Replace(s)
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, rp)
}
