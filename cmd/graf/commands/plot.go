package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/graf/internal/app"
)

func (c *CLI) newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [expression]",
		Short: "Plot an expression interactively",
		Long: `Plot opens the interactive screen: type an expression, pan with the
arrow keys or a mouse drag, zoom with the wheel or +/-. With --watch the
expression is read from a file and replotted on every save.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var expression string
			if len(args) > 0 {
				expression = args[0]
			}
			watch, _ := cmd.Flags().GetString("watch")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			color, _ := cmd.Flags().GetString("color")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				Expression: expression,
				WatchFile:  watch,
				OutputMode: outputMode,
				Color:      color,
			})
		},
	}
	cmd.Flags().StringP("watch", "w", "", "Follow a formula file and replot on every save")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	cmd.Flags().StringP("color", "c", "", "Curve color as a hex value, overrides the configuration")
	return cmd
}
