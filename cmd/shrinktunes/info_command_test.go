package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestInfoListsCommonFormats(t *testing.T) {
	env := setupCLITestEnv(t)
	_ = env

	out, _, err := runCLI(t, []string{"info"})
	if err != nil {
		t.Fatalf("info: %v", err)
	}

	requireContains(t, out, "ffmpeg")
	requireContains(t, out, "installed")
	requireContains(t, out, "Decoders:")
	requireContains(t, out, "Encoders:")
	requireContains(t, out, "wav")
	requireContains(t, out, "mp3")

	// mp2 is parsed from the comma alias but is not in the common subset.
	if strings.Contains(out, "mp2") {
		t.Fatalf("expected mp2 to be hidden without --all, got:\n%s", out)
	}
}

func TestInfoAllIncludesUncommonFormats(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"info", "--all"})
	if err != nil {
		t.Fatalf("info --all: %v", err)
	}
	requireContains(t, out, "mp2")
	requireContains(t, out, "MPEG audio layer")
}

func TestInfoMissingFFmpegFails(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeConfig(t, filepath.Join(env.baseDir, "missing-ffmpeg"))

	out, _, err := runCLI(t, []string{"info"})
	if err == nil {
		t.Fatal("expected info to fail without ffmpeg")
	}
	requireContains(t, out, "NOT installed")
}
