package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"shrinktunes/internal/deps"
	"shrinktunes/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg and filesystem readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := stdoutIsTerminal()
			failures := 0
			for _, result := range preflight.RunAll(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failures++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
				if result.Name == "FFmpeg" && !result.Passed {
					fmt.Fprintln(out, statusIndent+deps.InstallHint(runtime.GOOS))
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d check(s) failed", failures)
			}
			return nil
		},
	}
}
