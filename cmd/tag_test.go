package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestTagAddListRemove(t *testing.T) {
	t.Setenv("CMDKIT_DATA_DIR", t.TempDir())
	saveWorkflow(t, "deploy", "echo hi")

	var out bytes.Buffer
	tagAddCmd.SetOut(&out)
	if err := tagAddCmd.RunE(tagAddCmd, []string{"deploy", "release"}); err != nil {
		t.Fatalf("tag add: %v", err)
	}
	if !strings.Contains(out.String(), "added tag 'release' to 'deploy'") {
		t.Fatalf("unexpected add output: %q", out.String())
	}

	out.Reset()
	tagListCmd.SetOut(&out)
	if err := tagListCmd.RunE(tagListCmd, []string{"deploy"}); err != nil {
		t.Fatalf("tag list: %v", err)
	}
	if !strings.Contains(out.String(), "- release") {
		t.Fatalf("unexpected list output: %q", out.String())
	}

	out.Reset()
	tagRemoveCmd.SetOut(&out)
	if err := tagRemoveCmd.RunE(tagRemoveCmd, []string{"deploy", "release"}); err != nil {
		t.Fatalf("tag remove: %v", err)
	}

	out.Reset()
	tagListCmd.SetOut(&out)
	if err := tagListCmd.RunE(tagListCmd, []string{"deploy"}); err != nil {
		t.Fatalf("tag list after remove: %v", err)
	}
	if strings.Contains(out.String(), "release") {
		t.Fatalf("tag should be gone: %q", out.String())
	}
}

func TestTagAddUnknownWorkflow(t *testing.T) {
	t.Setenv("CMDKIT_DATA_DIR", t.TempDir())
	tagAddCmd.SetOut(&bytes.Buffer{})
	if err := tagAddCmd.RunE(tagAddCmd, []string{"ghost", "x"}); err == nil {
		t.Fatalf("expected error for unknown workflow")
	}
}
