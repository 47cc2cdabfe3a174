// Package engine executes rendered workflow commands under one of three
// failure-handling modes and aggregates the result.
package engine

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cmdkit/cmdkit/internal/executor"
)

// CommandResult records the outcome of one executed (or previewed) command.
type CommandResult struct {
	Index    int
	Command  string
	ExitCode int
	Success  bool
}

// Result is the aggregate verdict of one workflow run.
//
// In RunAll mode Commands holds every command in sequence order and
// Failures the subset that exited non-zero; ExitCode is 1 when anything
// failed. In the chained modes Commands holds the single joined command
// line and ExitCode is the joined process's own exit code. Dry runs always
// carry ExitCode 0.
type Result struct {
	Mode     Mode
	DryRun   bool
	Commands []CommandResult
	Failures []CommandResult
	ExitCode int
}

// Success reports whether the run as a whole succeeded.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Engine runs rendered commands through a Runner. It is strictly
// sequential: one process in flight at a time, each awaited to completion.
type Engine struct {
	Runner executor.Runner
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Engine writing command output to the given writers.
func New(runner executor.Runner, stdout, stderr io.Writer) *Engine {
	return &Engine{Runner: runner, Stdout: stdout, Stderr: stderr}
}

// Run executes commands under the given mode. With dryRun set no process
// is spawned in any mode; the Result carries what would have run.
func (e *Engine) Run(ctx context.Context, commands []string, mode Mode, dryRun bool) (*Result, error) {
	res := &Result{Mode: mode, DryRun: dryRun}
	switch mode {
	case RunAll:
		return e.runAll(ctx, commands, res)
	case StopOnFail, StopOnSuccess:
		return e.runChained(ctx, commands, res)
	default:
		return nil, fmt.Errorf("unknown execution mode %d", mode)
	}
}

// runAll executes every command independently and never short-circuits:
// later commands run no matter how earlier ones exited.
func (e *Engine) runAll(ctx context.Context, commands []string, res *Result) (*Result, error) {
	if res.DryRun {
		for i, c := range commands {
			res.Commands = append(res.Commands, CommandResult{Index: i + 1, Command: c, Success: true})
		}
		return res, nil
	}
	for i, c := range commands {
		code, err := e.Runner.Run(ctx, c, e.Stdout, e.Stderr)
		if err != nil {
			return nil, fmt.Errorf("run command %d: %w", i+1, err)
		}
		cr := CommandResult{Index: i + 1, Command: c, ExitCode: code, Success: code == 0}
		res.Commands = append(res.Commands, cr)
		if code != 0 {
			res.Failures = append(res.Failures, cr)
		}
	}
	if len(res.Failures) > 0 {
		res.ExitCode = 1
	}
	return res, nil
}

// runChained joins the commands with the mode's shell operator and hands
// the single line to one shell invocation. Short-circuiting is the shell's
// own evaluation, not engine logic, so quoting and redirection inside the
// individual commands keep their exact shell semantics. The joined
// process's exit code is the verdict; which sub-command produced it is
// unknowable here and is accepted as such.
func (e *Engine) runChained(ctx context.Context, commands []string, res *Result) (*Result, error) {
	joined := strings.Join(commands, " "+res.Mode.Operator()+" ")
	cr := CommandResult{Index: 1, Command: joined, Success: true}
	if res.DryRun {
		res.Commands = append(res.Commands, cr)
		return res, nil
	}
	code, err := e.Runner.Run(ctx, joined, e.Stdout, e.Stderr)
	if err != nil {
		return nil, fmt.Errorf("run chained commands: %w", err)
	}
	cr.ExitCode = code
	cr.Success = code == 0
	res.Commands = append(res.Commands, cr)
	if code != 0 {
		res.Failures = append(res.Failures, cr)
		res.ExitCode = code
	}
	return res, nil
}
