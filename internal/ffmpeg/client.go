package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolUnavailable marks failures caused by the ffmpeg binary missing or
// refusing to start. The CLI maps it to a platform install hint.
var ErrToolUnavailable = errors.New("ffmpeg unavailable")

// FormatLister is the capability-query half of the transcoder.
type FormatLister interface {
	Formats(ctx context.Context) (string, error)
}

// Transcoder converts a single source file into a single destination file.
type Transcoder interface {
	Convert(ctx context.Context, input, output string) error
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (string, error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary string
	exec   Executor
}

// New constructs an ffmpeg client. An empty binary falls back to "ffmpeg"
// resolved via PATH.
func New(binary string, opts ...Option) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	client := &Client{binary: binary, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Binary reports the configured ffmpeg command.
func (c *Client) Binary() string {
	return c.binary
}

// Available reports whether the ffmpeg binary can be resolved.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// Formats runs the capability query and returns the raw formats table.
func (c *Client) Formats(ctx context.Context) (string, error) {
	output, err := c.exec.Run(ctx, c.binary, []string{"-hide_banner", "-formats"})
	if err != nil {
		return "", fmt.Errorf("%w: query formats: %w", ErrToolUnavailable, err)
	}
	return output, nil
}

// Convert transcodes input into output, overwriting an existing output file.
// The existence policy lives in the conversion driver; by the time the client
// runs, the decision to write has already been made.
func (c *Client) Convert(ctx context.Context, input, output string) error {
	if input == "" {
		return errors.New("input path required")
	}
	if output == "" {
		return errors.New("output path required")
	}
	if _, err := c.exec.Run(ctx, c.binary, []string{"-hide_banner", "-y", "-i", input, output}); err != nil {
		return fmt.Errorf("ffmpeg convert: %w", err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("%s %s: %w: %s", binary, strings.Join(args, " "), err, lastLine(detail))
		}
		return "", fmt.Errorf("%s %s: %w", binary, strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

// lastLine trims ffmpeg's stderr chatter down to its final line, which is
// where ffmpeg reports the actual failure.
func lastLine(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
