package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"shrinktunes/internal/convert"
	"shrinktunes/internal/deps"
	"shrinktunes/internal/ffmpeg"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputs []string
	var verbose bool
	var force bool

	cmd := &cobra.Command{
		Use:   "convert <glob>",
		Short: "Convert matching source files to the requested formats",
		Long: `Convert expands the glob pattern, keeps the files carrying the configured
source extension (wav by default), and runs ffmpeg once per target format and
file. Existing outputs are skipped unless --force is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			client, err := ctx.ffmpegClient()
			if err != nil {
				return err
			}
			if !client.Available() {
				printInstallHint(cmd, client.Binary())
				return fmt.Errorf("%w: binary %q not found", ffmpeg.ErrToolUnavailable, client.Binary())
			}

			targets := normalizeFormats(outputs)
			if len(targets) == 0 {
				targets = cfg.Convert.OutputFormats
			}
			if len(targets) == 0 {
				return errors.New("no output formats requested: pass -o or set convert.output_formats")
			}

			catalog, err := ffmpeg.LoadCatalog(cmd.Context(), client)
			if err != nil {
				return err
			}
			if missing := catalog.Unsupported(targets); len(missing) > 0 {
				out := cmd.OutOrStdout()
				for _, format := range missing {
					fmt.Fprintf(out, "Unsupported output format: %s\n", format)
				}
				return fmt.Errorf("%d unsupported output format(s)", len(missing))
			}

			logger, err := ctx.logger(verbose)
			if err != nil {
				return err
			}

			driver, err := convert.New(client,
				convert.WithLogger(logger),
				convert.WithSourceExtension(cfg.Convert.SourceExtension),
				convert.WithLockPath(cfg.LockPath()),
			)
			if err != nil {
				return err
			}

			result, err := driver.ConvertBatch(cmd.Context(), args[0], targets, force || cfg.Convert.Overwrite)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d files converted, %d skipped.\n", result.Converted, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&outputs, "output", "o", nil, "Output format(s); repeatable, validated against ffmpeg")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose mode")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force overwrite of existing files")
	return cmd
}

func printInstallHint(cmd *cobra.Command, binary string) {
	out := cmd.OutOrStdout()
	if binary == "ffmpeg" {
		fmt.Fprintln(out, "ffmpeg is not installed. Please install it first.")
	} else {
		fmt.Fprintf(out, "ffmpeg binary %q was not found.\n", binary)
	}
	fmt.Fprintln(out, deps.InstallHint(runtime.GOOS))
}

// normalizeFormats lowercases requested formats and strips leading dots so
// "-o .MP3" and "-o mp3" request the same thing.
func normalizeFormats(formats []string) []string {
	normalized := make([]string, 0, len(formats))
	for _, format := range formats {
		format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
		if format != "" {
			normalized = append(normalized, format)
		}
	}
	return normalized
}
