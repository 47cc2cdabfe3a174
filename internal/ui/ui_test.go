package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/cmdkit/cmdkit/internal/engine"
	"github.com/cmdkit/cmdkit/internal/registry"
)

type scriptedRunner struct {
	codes []int
}

func (s *scriptedRunner) Run(_ context.Context, _ string, _, _ io.Writer) (int, error) {
	code := s.codes[0]
	s.codes = s.codes[1:]
	return code, nil
}

func runResult(t *testing.T, commands []string, mode engine.Mode, dry bool, codes ...int) *engine.Result {
	t.Helper()
	e := engine.New(&scriptedRunner{codes: codes}, io.Discard, io.Discard)
	res, err := e.Run(context.Background(), commands, mode, dry)
	if err != nil {
		t.Fatalf("engine.Run(): %v", err)
	}
	return res
}

func TestRenderDryRunRunAll(t *testing.T) {
	res := runResult(t, []string{"echo a", "echo b"}, engine.RunAll, true)
	var out bytes.Buffer
	RenderDryRun(&out, "demo", res)
	s := out.String()
	if !strings.Contains(s, "dry run for workflow 'demo' (mode run-all):") {
		t.Fatalf("missing header: %q", s)
	}
	if !strings.Contains(s, "[1] echo a") || !strings.Contains(s, "[2] echo b") {
		t.Fatalf("missing indexed commands: %q", s)
	}
}

func TestRenderDryRunChained(t *testing.T) {
	res := runResult(t, []string{"echo a", "echo b"}, engine.StopOnFail, true)
	var out bytes.Buffer
	RenderDryRun(&out, "demo", res)
	s := out.String()
	if !strings.Contains(s, "would run: echo a && echo b") {
		t.Fatalf("missing joined preview: %q", s)
	}
	if !strings.Contains(s, "chained with &&") {
		t.Fatalf("missing operator note: %q", s)
	}
}

func TestRenderVerdict(t *testing.T) {
	var out bytes.Buffer
	res := runResult(t, []string{"a"}, engine.RunAll, false, 0)
	RenderVerdict(&out, "demo", res)
	if !strings.Contains(out.String(), "completed successfully") {
		t.Fatalf("missing success verdict: %q", out.String())
	}

	out.Reset()
	res = runResult(t, []string{"a", "b"}, engine.RunAll, false, 0, 2)
	RenderVerdict(&out, "demo", res)
	if !strings.Contains(out.String(), "1 failed command(s)") {
		t.Fatalf("missing failure count: %q", out.String())
	}
	if !strings.Contains(out.String(), "[2] b (exit code 2)") {
		t.Fatalf("missing failure detail: %q", out.String())
	}

	out.Reset()
	res = runResult(t, []string{"a", "b"}, engine.StopOnFail, false, 3)
	RenderVerdict(&out, "demo", res)
	if !strings.Contains(out.String(), "failed (exit code 3)") {
		t.Fatalf("missing chained verdict: %q", out.String())
	}
}

func TestWorkflowDetailListsPlaceholders(t *testing.T) {
	wf := &registry.Workflow{
		Name:      "deploy",
		CreatedAt: "2026-01-01 00:00:00",
		Commands: []registry.Command{
			{Position: 1, Command: "make push {{env}}"},
			{Position: 2, Command: "notify {{channel}} {{env}}"},
		},
		Tags: []string{"release"},
	}
	s := WorkflowDetail(wf)
	if !strings.Contains(s, "placeholders: channel, env") {
		t.Fatalf("missing sorted placeholder list: %q", s)
	}
	if !strings.Contains(s, "[1] make push {{env}}") {
		t.Fatalf("missing command listing: %q", s)
	}
	if !strings.Contains(s, "tags: release") {
		t.Fatalf("missing tags: %q", s)
	}
}
