package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shrinktunes/internal/testsupport"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd %s: %v", prev, err)
		}
	})
}

type cliTestEnv struct {
	baseDir    string
	workDir    string
	configPath string
	ffmpegPath string
}

// setupCLITestEnv isolates HOME and the working directory, installs a stub
// ffmpeg, and writes a config file pointing at it.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	workDir := filepath.Join(base, "work")
	for _, dir := range []string{homeDir, workDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", homeDir)
	chdir(t, workDir)

	env := &cliTestEnv{
		baseDir:    base,
		workDir:    workDir,
		configPath: filepath.Join(homeDir, ".config", "shrinktunes", "config.toml"),
		ffmpegPath: testsupport.WriteStubFFmpeg(t, base),
	}
	env.writeConfig(t, env.ffmpegPath)
	return env
}

func (e *cliTestEnv) writeConfig(t *testing.T, ffmpegBinary string) {
	t.Helper()
	content := fmt.Sprintf("[ffmpeg]\nbinary = %q\n\n[paths]\nlock_dir = %q\n",
		ffmpegBinary, filepath.Join(e.baseDir, "lock"))
	if err := os.MkdirAll(filepath.Dir(e.configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(e.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		// nil would make cobra fall back to the test binary's os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
