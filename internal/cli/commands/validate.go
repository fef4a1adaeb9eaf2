package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/graphdrawer/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile-file>",
		Short: "Validate a plot profile",
		Long: `Validate a GraphDrawer plot profile without plotting.

Checks:
  - YAML syntax
  - Image resolution and size
  - Export format
  - At least one Y channel`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	profilePath := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", profilePath)

	cfg, err := config.Load(commandContext(cmd), profilePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	width, height := cfg.Render.Size()
	fmt.Fprintf(out, "\nProfile valid!\n")
	fmt.Fprintf(out, "  X channel:  %s\n", cfg.Plot.X.Channel)
	fmt.Fprintf(out, "  Y channels: %s\n", strings.Join(cfg.Plot.Y.Channels, ", "))
	fmt.Fprintf(out, "  Output:     %s (%d dpi, %gx%gpt)\n", cfg.Render.Output, cfg.Render.DPI, float64(width), float64(height))
	fmt.Fprintf(out, "  Export:     %s\n", cfg.Export.Format)
	if cfg.Plot.Grayscale {
		fmt.Fprintf(out, "  Style:      black and white\n")
	}

	return nil
}
