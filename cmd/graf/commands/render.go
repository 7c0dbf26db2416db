package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/graf/internal/app"
	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <expression>",
		Short: "Render an expression once and print the frame",
		Long: `Render compiles the expression, samples it at full quality and prints
the resulting frame to stdout. Without an explicit size the detected
terminal size is used, or 80x24 when stdout is not a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			xRange, _ := cmd.Flags().GetString("x")
			yRange, _ := cmd.Flags().GetString("y")
			color, _ := cmd.Flags().GetString("color")

			opts := app.RenderOptions{
				Expression: args[0],
				Width:      width,
				Height:     height,
				Color:      color,
			}

			var err error
			if opts.XMin, opts.XMax, err = parseRange(xRange); err != nil {
				return err
			}
			if opts.YMin, opts.YMax, err = parseRange(yRange); err != nil {
				return err
			}

			out, err := c.app.Render(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Int("width", 0, "Output width in terminal cells")
	cmd.Flags().Int("height", 0, "Output height in terminal cells")
	cmd.Flags().String("x", "", "Visible x range as min,max")
	cmd.Flags().String("y", "", "Visible y range as min,max")
	cmd.Flags().StringP("color", "c", "", "Curve color as a hex value, overrides the configuration")
	return cmd
}

// parseRange parses a "min,max" flag value. An empty flag keeps the
// configured bounds and parses to the zero range.
func parseRange(s string) (lo, hi float64, err error) {
	if s == "" {
		return 0, 0, nil
	}

	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, zerr.With(domain.ErrInvalidBounds, "range", s)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(first), 64); err != nil {
		return 0, 0, zerr.With(domain.ErrInvalidBounds, "range", s)
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(second), 64); err != nil {
		return 0, 0, zerr.With(domain.ErrInvalidBounds, "range", s)
	}
	return lo, hi, nil
}
