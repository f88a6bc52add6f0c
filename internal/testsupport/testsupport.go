// Package testsupport provides shared fixtures for shrinktunes tests: test
// configurations with isolated temp directories and stub ffmpeg scripts that
// stand in for the real transcoder.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"shrinktunes/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LockDir = filepath.Join(base, "lock")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// StubFormatsOutput is the formats table the stub ffmpeg prints. It carries
// the shapes the parser must handle: decode+encode, decode-only, encode-only,
// and comma-separated extension aliases.
const StubFormatsOutput = `File formats:
 D  aac             raw ADTS AAC (Advanced Audio Coding)
  E flac            raw FLAC
 DE mp3,mp2         MPEG audio layer
 DE ogg             Ogg
 DE wav             WAV / WAVE (Waveform Audio)
`

// WriteStubFFmpeg writes an executable ffmpeg stand-in that answers the
// -formats query with StubFormatsOutput and creates the output file for a
// conversion invocation. It returns the script path.
func WriteStubFFmpeg(t testing.TB, dir string) string {
	t.Helper()

	script := fmt.Sprintf(`#!/bin/sh
for arg in "$@"; do
  if [ "$arg" = "-formats" ]; then
    cat <<'EOF'
%sEOF
    exit 0
  fi
done
# conversion shape: last argument is the output path
for out in "$@"; do :; done
printf 'converted' > "$out"
`, StubFormatsOutput)

	path := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write ffmpeg stub: %v", err)
	}
	return path
}

// WriteFailingFFmpeg writes an ffmpeg stand-in whose conversion invocations
// always exit nonzero; the -formats query still succeeds so catalogs load.
func WriteFailingFFmpeg(t testing.TB, dir string) string {
	t.Helper()

	script := fmt.Sprintf(`#!/bin/sh
for arg in "$@"; do
  if [ "$arg" = "-formats" ]; then
    cat <<'EOF'
%sEOF
    exit 0
  fi
done
echo "conversion failed" >&2
exit 1
`, StubFormatsOutput)

	path := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write failing ffmpeg stub: %v", err)
	}
	return path
}

// WriteWavFiles creates empty placeholder source files in dir.
func WriteWavFiles(t testing.TB, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}
