package ffmpeg_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"shrinktunes/internal/ffmpeg"
)

type stubExecutor struct {
	output string
	err    error
	calls  int
	args   [][]string
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	s.calls++
	s.args = append(s.args, append([]string(nil), args...))
	return s.output, s.err
}

func TestFormatsRunsCapabilityQuery(t *testing.T) {
	exec := &stubExecutor{output: sampleFormatsOutput}
	client := ffmpeg.New("ffmpeg", ffmpeg.WithExecutor(exec))

	output, err := client.Formats(context.Background())
	if err != nil {
		t.Fatalf("Formats returned error: %v", err)
	}
	if output != sampleFormatsOutput {
		t.Fatalf("unexpected output: %q", output)
	}
	if exec.calls != 1 {
		t.Fatalf("expected 1 invocation, got %d", exec.calls)
	}
	if !reflect.DeepEqual(exec.args[0], []string{"-hide_banner", "-formats"}) {
		t.Fatalf("unexpected args: %#v", exec.args[0])
	}
}

func TestFormatsWrapsFailureAsToolUnavailable(t *testing.T) {
	client := ffmpeg.New("ffmpeg", ffmpeg.WithExecutor(&stubExecutor{err: errors.New("exec: not found")}))
	_, err := client.Formats(context.Background())
	if !errors.Is(err, ffmpeg.ErrToolUnavailable) {
		t.Fatalf("expected ErrToolUnavailable, got %v", err)
	}
}

func TestConvertPassesInputAndOutput(t *testing.T) {
	exec := &stubExecutor{}
	client := ffmpeg.New("ffmpeg", ffmpeg.WithExecutor(exec))

	if err := client.Convert(context.Background(), "a.wav", "a.mp3"); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !reflect.DeepEqual(exec.args[0], []string{"-hide_banner", "-y", "-i", "a.wav", "a.mp3"}) {
		t.Fatalf("unexpected args: %#v", exec.args[0])
	}
}

func TestConvertRequiresPaths(t *testing.T) {
	client := ffmpeg.New("ffmpeg", ffmpeg.WithExecutor(&stubExecutor{}))
	if err := client.Convert(context.Background(), "", "a.mp3"); err == nil {
		t.Fatal("expected error for missing input")
	}
	if err := client.Convert(context.Background(), "a.wav", ""); err == nil {
		t.Fatal("expected error for missing output")
	}
}

func TestConvertPropagatesExecutorError(t *testing.T) {
	execErr := errors.New("exit status 1")
	client := ffmpeg.New("ffmpeg", ffmpeg.WithExecutor(&stubExecutor{err: execErr}))
	if err := client.Convert(context.Background(), "a.wav", "a.mp3"); !errors.Is(err, execErr) {
		t.Fatalf("expected executor error, got %v", err)
	}
}

func TestNewDefaultsBinary(t *testing.T) {
	if got := ffmpeg.New("").Binary(); got != "ffmpeg" {
		t.Fatalf("expected default binary, got %q", got)
	}
	if got := ffmpeg.New(" /opt/ffmpeg/bin/ffmpeg ").Binary(); got != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("expected trimmed binary, got %q", got)
	}
}

func TestAvailable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts require a POSIX shell")
	}
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ffmpeg")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	if !ffmpeg.New(stub).Available() {
		t.Fatal("expected stub binary to be available")
	}
	if ffmpeg.New("clearly-not-present-transcoder").Available() {
		t.Fatal("expected missing binary to be unavailable")
	}
}
