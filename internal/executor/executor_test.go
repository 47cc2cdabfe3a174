package executor

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests use sh")
	}
}

func TestRunReportsExitCodes(t *testing.T) {
	skipOnWindows(t)
	e := &Executor{}
	ctx := context.Background()
	var out, errOut bytes.Buffer

	code, err := e.Run(ctx, "exit 0", &out, &errOut)
	if err != nil {
		t.Fatalf("Run(exit 0): %v", err)
	}
	if code != 0 {
		t.Fatalf("exit 0 reported code %d", code)
	}

	code, err = e.Run(ctx, "exit 3", &out, &errOut)
	if err != nil {
		t.Fatalf("Run(exit 3): %v", err)
	}
	if code != 3 {
		t.Fatalf("exit 3 reported code %d", code)
	}
}

func TestRunCapturesOutput(t *testing.T) {
	skipOnWindows(t)
	e := &Executor{}
	var out, errOut bytes.Buffer

	code, err := e.Run(context.Background(), "echo hello-cmdkit", &out, &errOut)
	if err != nil || code != 0 {
		t.Fatalf("Run(): code=%d err=%v", code, err)
	}
	if !strings.Contains(out.String(), "hello-cmdkit") {
		t.Fatalf("stdout missing command output: %q", out.String())
	}
}

func TestRunShellFeaturesSurvive(t *testing.T) {
	skipOnWindows(t)
	e := &Executor{}
	var out, errOut bytes.Buffer

	// The command line must reach the shell whole, pipes included.
	code, err := e.Run(context.Background(), "printf 'a\\nb\\n' | wc -l", &out, &errOut)
	if err != nil || code != 0 {
		t.Fatalf("Run(): code=%d err=%v", code, err)
	}
	if !strings.Contains(strings.TrimSpace(out.String()), "2") {
		t.Fatalf("pipe did not run in the shell: %q", out.String())
	}
}

func TestRunEmptyCommand(t *testing.T) {
	e := &Executor{}
	if _, err := e.Run(context.Background(), "   ", &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for empty command")
	}
}

func TestShellInvocationOverride(t *testing.T) {
	shell, args, err := shellInvocation("echo hi", "bash -lc")
	if err != nil {
		t.Fatalf("shellInvocation(): %v", err)
	}
	if shell != "bash" {
		t.Fatalf("shell = %q, want bash", shell)
	}
	if len(args) != 2 || args[0] != "-lc" || args[1] != "echo hi" {
		t.Fatalf("unexpected args: %v", args)
	}

	if _, _, err := shellInvocation("echo hi", "bash 'unterminated"); err == nil {
		t.Fatalf("expected parse error for bad override")
	}
}

func TestSanitizeCommand(t *testing.T) {
	got := sanitizeCommand("echo “hi”​ and more\x00")
	if got != "echo \"hi\" and more" {
		t.Fatalf("sanitizeCommand() = %q", got)
	}
}
