package deps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "   "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for unset command: %#v", results[2])
	}
}

func TestFFmpegRequirementDefaultsBinary(t *testing.T) {
	if req := FFmpegRequirement(""); req.Command != "ffmpeg" {
		t.Fatalf("expected default ffmpeg command, got %q", req.Command)
	}
	if req := FFmpegRequirement(" /usr/local/bin/ffmpeg "); req.Command != "/usr/local/bin/ffmpeg" {
		t.Fatalf("expected trimmed command, got %q", req.Command)
	}
}

func TestInstallHintPerPlatform(t *testing.T) {
	cases := map[string]string{
		"darwin":  "brew install ffmpeg",
		"linux":   "apt-get install ffmpeg",
		"windows": "winget install ffmpeg",
		"plan9":   "plan9",
	}
	for goos, want := range cases {
		if hint := InstallHint(goos); !strings.Contains(hint, want) {
			t.Fatalf("InstallHint(%q) = %q, want substring %q", goos, hint, want)
		}
	}
}
