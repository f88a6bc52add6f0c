package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"shrinktunes/internal/ffmpeg"
	"shrinktunes/internal/logging"
)

// Outcome is the terminal state of a single conversion task.
type Outcome int

const (
	// Converted means the transcoder ran and wrote the destination file.
	Converted Outcome = iota + 1
	// SkippedExisting means the destination already existed and force was off;
	// the transcoder was not invoked.
	SkippedExisting
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case SkippedExisting:
		return "skipped"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ErrBatchLocked reports that another shrinktunes run holds the batch lock.
var ErrBatchLocked = errors.New("another conversion run is in progress")

// ConversionError reports a failed transcoder invocation for one file.
// The batch aborts on the first one: a broken transcoder setup would fail
// every remaining file the same way.
type ConversionError struct {
	Source      string
	Destination string
	Err         error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s -> %s: %v", e.Source, e.Destination, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// FormatCount is the converted-file subtotal for one target extension.
type FormatCount struct {
	Extension string
	Converted int
}

// Result aggregates a batch run. Skipped is Candidates minus the converted
// grand total, matching the summary the tool has always printed; with more
// than one target extension the subtraction can go negative, so it is
// clamped at zero (see skip-count note in DESIGN.md).
type Result struct {
	Candidates int
	Converted  int
	Skipped    int
	PerFormat  []FormatCount
}

// Option configures the driver.
type Option func(*Driver)

// WithLogger sets the batch log sink. Without it the driver stays silent.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithSourceExtension overrides the accepted input extension (default wav).
func WithSourceExtension(ext string) Option {
	return func(d *Driver) {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			d.sourceExt = strings.ToLower(ext)
		}
	}
}

// WithLockPath enables a file lock around ConvertBatch so overlapping runs
// cannot interleave over the same tree.
func WithLockPath(path string) Option {
	return func(d *Driver) {
		d.lockPath = strings.TrimSpace(path)
	}
}

// Driver walks glob matches and feeds each candidate through the transcoder
// once per requested target format.
type Driver struct {
	transcoder ffmpeg.Transcoder
	logger     *slog.Logger
	sourceExt  string
	lockPath   string
}

// New constructs a driver around the given transcoder.
func New(transcoder ffmpeg.Transcoder, opts ...Option) (*Driver, error) {
	if transcoder == nil {
		return nil, errors.New("driver requires a transcoder")
	}
	driver := &Driver{
		transcoder: transcoder,
		logger:     logging.NewNop(),
		sourceExt:  "wav",
	}
	for _, opt := range opts {
		opt(driver)
	}
	return driver, nil
}

// ConvertOne converts a single source file into the target extension. The
// destination keeps the source's directory and base name. An existing
// destination without force short-circuits to SkippedExisting with no
// transcoder call.
func (d *Driver) ConvertOne(ctx context.Context, source, targetExt string, force bool) (Outcome, error) {
	return d.convertOne(ctx, d.logger, source, targetExt, force)
}

func (d *Driver) convertOne(ctx context.Context, logger *slog.Logger, source, targetExt string, force bool) (Outcome, error) {
	dest := destinationPath(source, targetExt)
	if !force {
		if _, err := os.Stat(dest); err == nil {
			logger.Info("skipping existing file, use force to overwrite", "dest", dest)
			return SkippedExisting, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("check destination %s: %w", dest, err)
		}
	}
	if err := d.transcoder.Convert(ctx, source, dest); err != nil {
		return 0, &ConversionError{Source: source, Destination: dest, Err: err}
	}
	logger.Info("converted file", "src", source, "dest", dest)
	return Converted, nil
}

// ConvertBatch expands the glob pattern, keeps the matches whose extension is
// exactly the accepted source extension (case-sensitive, so A.WAV is not a
// candidate for wav), and converts each of them once per target extension. Targets run in caller order, candidates in glob (lexical) order.
// The first conversion failure aborts the batch.
func (d *Driver) ConvertBatch(ctx context.Context, pattern string, targets []string, force bool) (*Result, error) {
	if len(targets) == 0 {
		return nil, errors.New("at least one target format required")
	}

	if d.lockPath != "" {
		lock := flock.New(d.lockPath)
		acquired, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire batch lock %s: %w", d.lockPath, err)
		}
		if !acquired {
			return nil, fmt.Errorf("%w (lock file %s)", ErrBatchLocked, d.lockPath)
		}
		defer func() { _ = lock.Unlock() }()
	}

	logger := d.logger.With("run_id", uuid.NewString())
	logger.Info("scanning glob", "pattern", pattern)

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand glob %q: %w", pattern, err)
	}

	candidates := make([]string, 0, len(matches))
	for _, match := range matches {
		if strings.TrimPrefix(filepath.Ext(match), ".") == d.sourceExt {
			candidates = append(candidates, match)
		}
	}
	logger.Info("found files", "matches", len(matches), "candidates", len(candidates))

	result := &Result{Candidates: len(candidates)}
	for _, target := range targets {
		count := 0
		for _, candidate := range candidates {
			outcome, err := d.convertOne(ctx, logger, candidate, target, force)
			if err != nil {
				return nil, err
			}
			if outcome == Converted {
				count++
			}
		}
		result.PerFormat = append(result.PerFormat, FormatCount{Extension: target, Converted: count})
		result.Converted += count
		logger.Info("format complete", "format", target, "converted", count)
	}

	result.Skipped = result.Candidates - result.Converted
	if result.Skipped < 0 {
		result.Skipped = 0
	}
	logger.Info("batch complete", "converted", result.Converted, "skipped", result.Skipped)
	return result, nil
}

// destinationPath swaps the source file's extension for the target one,
// keeping directory and base name.
func destinationPath(source, targetExt string) string {
	targetExt = strings.TrimPrefix(targetExt, ".")
	return strings.TrimSuffix(source, filepath.Ext(source)) + "." + targetExt
}
