package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shrinktunes/internal/ffmpeg"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the formats the installed ffmpeg supports",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ffmpegClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := stdoutIsTerminal()
			if !client.Available() {
				fmt.Fprintln(out, renderStatusLine("ffmpeg", statusError, "NOT installed", colorize))
				printInstallHint(cmd, client.Binary())
				return fmt.Errorf("%w: binary %q not found", ffmpeg.ErrToolUnavailable, client.Binary())
			}
			fmt.Fprintln(out, renderStatusLine("ffmpeg", statusOK, "installed", colorize))

			catalog, err := ffmpeg.LoadCatalog(cmd.Context(), client)
			if err != nil {
				return err
			}

			printFormatTable(out, "Decoders", catalog.Decoders(), showAll)
			printFormatTable(out, "Encoders", catalog.Encoders(), showAll)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "List every format instead of the common subset")
	return cmd
}

func printFormatTable(out io.Writer, title string, formats []ffmpeg.Format, showAll bool) {
	common := make(map[string]struct{})
	for _, format := range ffmpeg.FilterCommon(formats, nil) {
		common[format.Extension] = struct{}{}
	}

	rows := make([][3]string, 0, len(formats))
	if showAll {
		for _, format := range formats {
			_, isCommon := common[format.Extension]
			rows = append(rows, [3]string{format.Extension, format.Description, yesNo(isCommon)})
		}
	} else {
		for _, format := range ffmpeg.FilterCommon(formats, nil) {
			rows = append(rows, [3]string{format.Extension, format.Description, yesNo(true)})
		}
	}

	fmt.Fprintf(out, "\n%s:\n", title)
	if len(rows) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	fmt.Fprintln(out, renderFormatTable(rows))
}
